package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"

	otag "github.com/HicaroD/Otag"
	"github.com/HicaroD/Otag/config"
	"github.com/HicaroD/Otag/internal/diagnostics"
)

var DevMode string

func main() {
	log.SetFlags(0)
	log.SetPrefix("otag: ")

	config.SetDevMode(DevMode == "1")
	if config.DEV {
		log.Println("[DEV MODE] initialized")
	}

	os.Exit(run(os.Args))
}

func run(argv []string) int {
	args, err := cli(argv)
	if err != nil {
		if args.Command == COMMAND_HELP {
			fmt.Fprint(os.Stderr, HELP_COMMAND)
			return 2
		}
		log.Println(err)
		return 2
	}

	switch args.Command {
	case COMMAND_HELP:
		fmt.Print(HELP_COMMAND)
		return 0
	case COMMAND_VERSION:
		fmt.Printf("otag %s\n", VERSION)
		return 0
	case COMMAND_EVAL:
		return report(otag.New().RunInline(args.Code))
	case COMMAND_REPL:
		return repl(otag.New(otag.WithDisk(".")))
	case COMMAND_MANIFEST:
		return runManifest(args.ManifestPath)
	case COMMAND_RUN:
		return runFile(args.Path)
	}
	return 2
}

func runFile(filePath string) int {
	dir, name := filepath.Split(filePath)
	if dir == "" {
		dir = "."
	}
	rt := otag.New(otag.WithDisk(dir))
	return report(rt.Run(name))
}

// runManifest preloads the manifest's includes in memory and runs its entry
// with the manifest's directory as the disk root.
func runManifest(manifestPath string) int {
	manifest, err := config.LoadManifest(manifestPath)
	if err != nil {
		log.Println(err)
		return 2
	}

	rt := otag.New(otag.WithDisk(manifest.Dir))
	for _, include := range manifest.Include {
		src, err := os.ReadFile(filepath.Join(manifest.Dir, filepath.FromSlash(include)))
		if err != nil {
			log.Println(err)
			return 1
		}
		rt.AddSource(path.Clean(include), string(src))
	}

	return report(rt.Run(manifest.Entry))
}

func report(err error) int {
	if err == nil {
		return 0
	}
	var diag *diagnostics.Diag
	if errors.As(err, &diag) {
		fmt.Fprint(os.Stderr, diag.Error())
		return 1
	}
	log.Println(err)
	return 1
}
