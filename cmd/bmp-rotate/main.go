package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/ironsheep/bmp-rotate/internal/logging"
	"github.com/ironsheep/bmp-rotate/internal/pipeline"
	"github.com/ironsheep/bmp-rotate/internal/server"
)

// Version information, set through -ldflags at build time.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log, err := logging.New(os.Getenv(logging.EnvLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	code := run(log, os.Args[1:], os.Stdout, os.Stderr)
	_ = log.Sync() // fsync on a terminal stderr fails with EINVAL
	os.Exit(code)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "bmp-rotate - rotate 24-bit BMP images by 90 degrees")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: bmp-rotate [--turns N] <source-image> <transformed-image>")
	fmt.Fprintln(w, "       bmp-rotate --mcp")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --turns N        Counter-clockwise quarter turns (default 1, negative = clockwise)")
	fmt.Fprintln(w, "  --mcp            Serve BMP tools as JSON-RPC over stdin/stdout")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintf(w, "  %s=debug    Enable debug logging\n", logging.EnvLevel)
}

// run executes the command line and returns the process exit code.
func run(log *zap.SugaredLogger, args []string, stdout, stderr io.Writer) int {
	if len(args) == 1 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Fprintf(stdout, "bmp-rotate %s\n", Version)
			fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
			return 0
		case "--help", "-h", "help":
			usage(stdout)
			return 0
		case "--mcp":
			log.Debugf("bmp-rotate %s (built %s, commit %s) serving on stdio", Version, BuildTime, GitCommit)
			srv := server.New(log, Version)
			if err := srv.Run(); err != nil {
				log.Errorf("server error: %v", err)
				return 1
			}
			return 0
		}
	}

	turns := 1
	if len(args) == 4 && args[0] == "--turns" {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			log.Errorf("invalid --turns value %q: %v", args[1], err)
			return 1
		}
		turns = n
		args = args[2:]
	}
	if len(args) != 2 {
		usage(stderr)
		return 1
	}

	res, err := pipeline.RotateFile(log, args[0], args[1], turns)
	if err != nil {
		log.Errorf("%v", err)
		return pipeline.ExitCode(err)
	}
	log.Infof("wrote %s (%dx%d)", res.Destination, res.Width, res.Height)
	return pipeline.ExitCode(nil)
}
