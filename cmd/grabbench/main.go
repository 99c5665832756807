// grabbench is the helper binary the harness builds for the
// "grab (Go)" subject: a minimal downloader on cavaliergopher/grab
// that reports the artifact it produced on file=/size= lines.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cavaliergopher/grab/v3"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: grabbench <url> <output-dir>")
		os.Exit(1)
	}
	url := os.Args[1]
	outputDir := os.Args[2]

	req, err := grab.NewRequest(outputDir, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid request: %v\n", err)
		os.Exit(1)
	}
	resp := grab.DefaultClient.Do(req)
	if err := resp.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "download failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("file=%s\n", filepath.Base(resp.Filename))
	fmt.Printf("size=%d\n", resp.BytesComplete())
}
