//go:build ignore

// ====================================================
// program that builds backdrop for desktop and web
//
// usage :
// 	go run build.go [desktop|web|all]
//
// web build goes to ./web_build and can be served with
// 	backdrop serve
// ====================================================

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"unicode/utf8"

	"backdrop/misc"
)

const SettingsPath = "build-settings.txt"

const WebBuildDir = "./web_build"

var SettingsList []string
var DefaultSettings = make(map[string]bool)
var SettingsComments = make(map[string]string)

func init() {
	setDefault := func(name string, value bool, comment string) {
		SettingsList = append(SettingsList, name)
		DefaultSettings[name] = value
		SettingsComments[name] = comment
	}

	setDefault("opt", true, "Optimize and inline.")
	setDefault("wasm-opt", false, "Optimize wasm (requires wasm-opt from https://github.com/WebAssembly/binaryen).")
	setDefault("no-vcs", false, "Stop Go compiler from stamp binary with version control information.")
}

func PrintUsage() {
	scriptName := misc.GetScriptName()

	fmt.Printf("\n")
	fmt.Printf("Usage of %s:\n", scriptName)
	fmt.Printf("\n")
	fmt.Printf("go run %s [target]\n", scriptName)
	fmt.Printf("\n")
	fmt.Printf("valid targets:\n")
	fmt.Printf("  desktop\n")
	fmt.Printf("  web\n")
	fmt.Printf("  all\n")
	fmt.Printf("\n")
	fmt.Printf("build settings are read from %s\n", SettingsPath)
	fmt.Printf("\n")
}

func main() {
	if err := misc.SetupLoggers(false); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer misc.SyncLoggers()

	args := os.Args[1:]

	helps := []string{"help", "-help", "--help", "h", "-h", "--h"}
	if len(args) > 0 && slices.Contains(helps, args[0]) {
		PrintUsage()
		os.Exit(1)
	}

	buildTarget := "desktop"
	if len(args) == 1 {
		buildTarget = args[0]
	} else if len(args) > 1 {
		misc.ErrLogger.Errorf("too many arguments")
		PrintUsage()
		os.Exit(1)
	}

	if !(buildTarget == "desktop" || buildTarget == "web" || buildTarget == "all") {
		misc.ErrLogger.Errorf("%s is not a vaid target", buildTarget)
		PrintUsage()
		os.Exit(1)
	}

	// if settings file doesn't exist, create one
	if exist, err := misc.CheckFileExists(SettingsPath); err != nil {
		misc.ErrLogger.Errorf("could not check if %s file exists: %v", SettingsPath, err)
		os.Exit(1)
	} else if !exist {
		misc.InfoLogger.Infof("couldn't find %s, making a default one", SettingsPath)

		if err := SaveSettings(SettingsPath, DefaultSettings); err != nil {
			misc.ErrLogger.Errorf("could not write default settings to %s: %v", SettingsPath, err)
			os.Exit(1)
		}
	}

	misc.InfoLogger.Infof("loading settings from %s", SettingsPath)
	settings, err := LoadSettings(SettingsPath)
	if err != nil {
		misc.ErrLogger.Errorf("failed to load settings : %v", err)
		os.Exit(1)
	}

	for _, name := range SettingsList {
		misc.InfoLogger.Infof("  %-10s : %v", name, settings[name])
	}

	misc.InfoLogger.Infof("building %s", buildTarget)

	if buildTarget == "desktop" || buildTarget == "all" {
		if err := BuildApp(settings, false); err != nil {
			misc.ErrLogger.Errorf("failed to build for desktop: %v", err)
			os.Exit(exitCode(err))
		}
	}
	if buildTarget == "web" || buildTarget == "all" {
		if err := BuildApp(settings, true); err != nil {
			misc.ErrLogger.Errorf("failed to build for web: %v", err)
			os.Exit(exitCode(err))
		}
		if err := PrepareWebBuild(); err != nil {
			misc.ErrLogger.Errorf("failed to prepare web build: %v", err)
			os.Exit(1)
		}
	}
}

func exitCode(err error) int {
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return 1
}

func SaveSettings(path string, settings map[string]bool) error {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "// settings file for building\n")
	fmt.Fprintf(sb, "// lines starting with // are comments\n")
	fmt.Fprintf(sb, "\n")
	for _, settingName := range SettingsList {
		fmt.Fprintf(sb, "// %s\n", SettingsComments[settingName])
		fmt.Fprintf(sb, "%s %v\n", settingName, settings[settingName])
		fmt.Fprintf(sb, "\n")
	}
	return os.WriteFile(path, []byte(sb.String()), 0664)
}

func LoadSettings(path string) (map[string]bool, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(file) {
		return nil, fmt.Errorf("not a valid utf8 file")
	}

	text := strings.ReplaceAll(string(file), "\r\n", "\n")

	settings := make(map[string]bool)
	for k, v := range DefaultSettings {
		settings[k] = v
	}

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= 0 || strings.HasPrefix(trimmed, "//") {
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) != 2 {
			misc.WarnLogger.Warnf("%s:%d: \"%s\" doesn't have two fields, ignored", path, i+1, line)
			continue
		}

		if _, ok := DefaultSettings[fields[0]]; !ok {
			misc.WarnLogger.Warnf("%s:%d: \"%s\" is not a valid option, ignored", path, i+1, fields[0])
			continue
		}

		switch fields[1] {
		case "true":
			settings[fields[0]] = true
		case "false":
			settings[fields[0]] = false
		default:
			misc.WarnLogger.Warnf("%s:%d: \"%s\" is not true or false, ignored", path, i+1, fields[1])
		}
	}

	return settings, nil
}

func runCmd(cmd *exec.Cmd) error {
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	misc.InfoLogger.Infof("%s", cmd.String())

	return cmd.Run()
}

func BuildApp(settings map[string]bool, buildWeb bool) error {
	gcFlags := "-e -l -N"
	if settings["opt"] {
		gcFlags = "-e"
	}

	dst := "backdrop"
	if runtime.GOOS == "windows" {
		dst += ".exe"
	}
	if buildWeb {
		if err := os.MkdirAll(WebBuildDir, 0775); err != nil {
			return err
		}
		dst = filepath.Join(WebBuildDir, "backdrop.wasm")
	}

	cmd := exec.Command(
		"go",
		"build",
		"-o", dst,
		"-gcflags=all="+gcFlags,
	)
	if settings["no-vcs"] {
		cmd.Args = append(cmd.Args, "-buildvcs=false")
	}
	cmd.Args = append(cmd.Args, "./cmd/backdrop")

	if buildWeb {
		cmd.Env = append(cmd.Env, os.Environ()...)
		cmd.Env = append(cmd.Env, "GOOS=js")
		cmd.Env = append(cmd.Env, "GOARCH=wasm")
	}

	if err := runCmd(cmd); err != nil {
		return err
	}

	if buildWeb && settings["wasm-opt"] {
		misc.InfoLogger.Infof("optimizing using wasm-opt")
		if !misc.CheckExeExists("wasm-opt") {
			return fmt.Errorf("couldn't find wasm-opt")
		}

		optDst := filepath.Join(WebBuildDir, "backdrop-opt.wasm")

		if err := runCmd(exec.Command("wasm-opt", dst, "-O2", "--enable-bulk-memory-opt", "-o", optDst)); err != nil {
			return err
		}
		if err := os.Rename(optDst, dst); err != nil {
			return err
		}
	}

	return nil
}

const indexHtml = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>html, body { margin: 0; height: 100%; background: #0B0D10; overflow: hidden; }</style>
</head>
<body>
<script src="wasm_exec.js"></script>
<script>
const go = new Go();
WebAssembly.instantiateStreaming(fetch("backdrop.wasm"), go.importObject).then((result) => {
	go.run(result.instance);
});
</script>
</body>
</html>
`

// PrepareWebBuild copies wasm_exec.js and writes index.html if there isn't one.
func PrepareWebBuild() error {
	out, err := exec.Command("go", "env", "GOROOT").Output()
	if err != nil {
		return fmt.Errorf("failed to find GOROOT: %w", err)
	}
	goroot := strings.TrimSpace(string(out))

	var wasmExec string
	for _, dir := range []string{"lib/wasm", "misc/wasm"} {
		candidate := filepath.Join(goroot, dir, "wasm_exec.js")
		if exists, _ := misc.CheckFileExists(candidate); exists {
			wasmExec = candidate
			break
		}
	}
	if wasmExec == "" {
		return fmt.Errorf("couldn't find wasm_exec.js in %s", goroot)
	}

	misc.InfoLogger.Infof("copying %s", wasmExec)
	if err := misc.CopyFile(wasmExec, filepath.Join(WebBuildDir, "wasm_exec.js"), 0664); err != nil {
		return err
	}

	indexPath := filepath.Join(WebBuildDir, "index.html")
	if exists, err := misc.CheckFileExists(indexPath); err != nil {
		return err
	} else if !exists {
		misc.InfoLogger.Infof("writing %s", indexPath)
		return os.WriteFile(indexPath, []byte(indexHtml), 0664)
	}

	return nil
}
