package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/neffpaving/site-checks/preview"

	"github.com/pkg/browser"
)

func main() {
	var (
		port      int
		dir       string
		noBrowser bool
	)
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.IntVar(&port, "port", preview.DefaultPort, "port to listen on")
	fs.StringVar(&dir, "dir", ".", "directory to serve")
	fs.BoolVar(&noBrowser, "no-browser", false, "don't open a browser after startup")
	_ = fs.Parse(os.Args[1:])

	server := &preview.Server{
		Dir:          dir,
		Port:         port,
		BrowserDelay: preview.DefaultBrowserDelay,
		Out:          os.Stdout,
		Logger:       log.New(os.Stderr, "", log.LstdFlags),
	}
	if !noBrowser {
		server.OpenBrowser = browser.OpenURL
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := server.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Preview server error: %s\n", err)
		os.Exit(1)
	}
}
