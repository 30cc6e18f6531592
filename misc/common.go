package misc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	ErrLogger  *zap.SugaredLogger
	WarnLogger *zap.SugaredLogger
	InfoLogger *zap.SugaredLogger
)

func init() {
	// before anyone configured us, log to nowhere
	nop := zap.NewNop().Sugar()
	ErrLogger, WarnLogger, InfoLogger = nop, nop, nop
}

// SetupLoggers builds loggers for command line tools.
// verbose switches to development config with debug level.
func SetupLoggers(verbose bool) error {
	var config zap.Config
	if verbose {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		config = zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	UseLogger(logger)

	return nil
}

// UseLogger routes every misc logger to logger.
func UseLogger(logger *zap.Logger) {
	sugar := logger.Sugar()

	ErrLogger = sugar.Named("fail")
	WarnLogger = sugar.Named("warn")
	InfoLogger = sugar.Named("info")
}

func SyncLoggers() {
	// stderr sync errors are noise on most terminals
	_ = InfoLogger.Sync()
}

func GetScriptName() string {
	_, scriptName := filepath.Split(os.Args[0])
	if _, scriptFile, _, ok := runtime.Caller(1); ok {
		_, scriptName = filepath.Split(scriptFile)
	}

	return scriptName
}

func CheckFileExists(path string) (bool, error) {
	// check if file exists
	info, err := os.Stat(path)

	if err == nil { // file exists
		mode := info.Mode()
		if !mode.IsRegular() {
			return false, fmt.Errorf("%s is not a regular file", path)
		}

		return true, nil
	} else if errors.Is(err, os.ErrNotExist) { // file does not exists
		return false, nil
	} else { // unable to check if file exists or not
		return false, err
	}
}

func IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// UniqueFilename returns file name like "prefix-0102150405.png"
// that doesn't exist in dir yet.
func UniqueFilename(dir, prefix, ext string) (string, error) {
	timeStr := time.Now().Format("0102150405")

	filename := fmt.Sprintf("%s-%s%s", prefix, timeStr, ext)

	for nameCounter := 2; ; nameCounter++ {
		exists, err := CheckFileExists(filepath.Join(dir, filename))
		if err != nil {
			return "", err
		}
		if !exists {
			return filename, nil
		}
		filename = fmt.Sprintf("%s-%s-(%d)%s", prefix, timeStr, nameCounter, ext)
	}
}

func WritePNG(path string, img image.Image) error {
	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}

	if err := os.WriteFile(path, buffer.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	InfoLogger.Debugf("wrote %d bytes to %s", buffer.Len(), path)

	return nil
}

// Checks if executables exists.
//
// Executables that are only in the working directory are not found
// since LookPath ignores relative paths.
func CheckExeExists(exe string) bool {
	_, err := exec.LookPath(exe)
	return err == nil
}

func CopyFile(src, dst string, perm os.FileMode) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}

	return dstFile.Close()
}
