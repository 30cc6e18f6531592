package main

import (
	"fmt"
	"math"
	"net/http"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"backdrop/misc"
)

var (
	flagServeFolder string
	flagServePort   uint
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web build of the background without caching",
	Long: `Starts static file server for the wasm build of the background.
Every response is sent with no cache headers so rebuilt files show up on refresh.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeFolder, "folder", "./web_build", "folder to serve")
	serveCmd.Flags().UintVar(&flagServePort, "port", 6969, "port")
}

func runServe(cmd *cobra.Command, args []string) error {
	if flagServePort > math.MaxUint16 {
		return fmt.Errorf("port %v is bigger than max port value", flagServePort)
	}

	if !filepath.IsLocal(flagServeFolder) {
		return fmt.Errorf("%s is not a local folder", flagServeFolder)
	}

	isDir, err := misc.IsDir(flagServeFolder)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", flagServeFolder, err)
	}
	if !isDir {
		return fmt.Errorf("%s is not a folder", flagServeFolder)
	}

	misc.InfoLogger.Infof("serving %s", flagServeFolder)
	misc.InfoLogger.Infof("listening to http://localhost:%v", flagServePort)

	fs := http.FileServer(http.Dir(flagServeFolder))
	return http.ListenAndServe(fmt.Sprintf(":%v", flagServePort), NoCache(fs))
}

// based on https://stackoverflow.com/questions/33880343/go-webserver-dont-cache-files-using-timestamp

var epoch = time.Unix(0, 0).Format(time.RFC1123)

var noCacheHeaders = map[string]string{
	"Expires":         epoch,
	"Cache-Control":   "no-cache, private, max-age=0",
	"Pragma":          "no-cache",
	"X-Accel-Expires": "0",
}

var etagHeaders = []string{
	"ETag",
	"If-Modified-Since",
	"If-Match",
	"If-None-Match",
	"If-Range",
	"If-Unmodified-Since",
}

func NoCache(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		// Delete any ETag headers that may have been set
		for _, v := range etagHeaders {
			if r.Header.Get(v) != "" {
				r.Header.Del(v)
			}
		}

		// Set our NoCache headers
		for k, v := range noCacheHeaders {
			w.Header().Set(k, v)
		}

		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}
