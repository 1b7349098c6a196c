// blockblast-ssh serves blockblast to SSH clients. Each connection plays its
// own game in a separate process.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"blockblast/server"
)

var (
	listenAddress string
	binaryPath    string
	hostKeyFile   string
	idleTimeout   time.Duration
	shareScore    bool
)

const (
	LogTimeFormat = "2006-01-02 15:04:05"
)

func init() {
	log.SetFlags(0)

	flag.StringVar(&listenAddress, "listen", server.DefaultAddress, "host SSH server on network address")
	flag.StringVar(&binaryPath, "blockblast", "", "path to blockblast binary (default: next to this binary, then $PATH)")
	flag.StringVar(&hostKeyFile, "hostkey", "", "path to SSH host key (default: generate one on start)")
	flag.DurationVar(&idleTimeout, "idle", server.ServerIdleTimeout, "disconnect idle sessions after this long")
	flag.BoolVar(&shareScore, "share-highscore", false, "let all players write the server's high score file")
}

func main() {
	flag.Parse()

	binary, err := findBinary(binaryPath)
	if err != nil {
		log.Fatal(err)
	}

	args := []string{"-play"}
	if !shareScore {
		args = append(args, "-no-save")
	}

	srv := server.New(listenAddress, binary, args...)
	srv.HostKeyFile = hostKeyFile
	srv.IdleTimeout = idleTimeout

	logger := make(chan string, server.LogQueueSize)
	go func() {
		for msg := range logger {
			log.Println(time.Now().Format(LogTimeFormat) + " " + msg)
		}
	}()
	srv.Logger = logger

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, server.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	<-sigc

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println(time.Now().Format(LogTimeFormat) + " shutdown: " + err.Error())
	}
}

func findBinary(path string) (string, error) {
	if path != "" {
		return exec.LookPath(path)
	}
	if self, err := os.Executable(); err == nil {
		sibling := filepath.Join(filepath.Dir(self), "blockblast")
		if _, err := os.Stat(sibling); err == nil {
			return sibling, nil
		}
	}
	return exec.LookPath("blockblast")
}
