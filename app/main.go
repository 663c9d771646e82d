package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

var opts struct {
	Server  ServerCmd `command:"server" description:"run qaflow server"`
	Token   TokenCmd  `command:"token" description:"show, regenerate or revoke a user's api token"`
	Version bool      `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	fmt.Printf("qaflow %s\n", revision)

	if err := loadDotEnv(".env"); err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	p.SubcommandsOptional = true
	p.CommandHandler = func(cmd flags.Commander, args []string) error {
		if opts.Version {
			return nil
		}
		if cmd == nil {
			return errors.New("command required: server or token")
		}
		return cmd.Execute(args)
	}

	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
}

// loadDotEnv reads environment variables from path. A missing file is not an error,
// variables already set in the environment are not overridden.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func setupLogs(debug bool) io.Writer {
	log.Setup(log.Msec, log.LevelBraces)
	if debug {
		log.Setup(log.Debug, log.Msec, log.LevelBraces, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	return os.Stdout
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
