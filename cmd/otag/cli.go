package main

import (
	"errors"
	"fmt"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/HicaroD/Otag/config"
)

type Command int

const (
	COMMAND_RUN Command = iota
	COMMAND_EVAL
	COMMAND_REPL
	COMMAND_MANIFEST
	COMMAND_HELP
	COMMAND_VERSION
)

type CliResult struct {
	Command Command

	Path         string // entry file for COMMAND_RUN
	Code         string // source for COMMAND_EVAL
	ManifestPath string
}

var VERSION = "0.1.0"

var HELP_COMMAND string = `Otağ - Türkçe anahtar kelimelerle yazılan küçük bir programlama dili.

Kullanım:
  otag [-h] [-v] [-c otag.yml] [-e KOD] [-i] [DOSYA]

Seçenekler:
  DOSYA         Çalıştırılacak .otağ dosyası
  -e KOD        Verilen kodu doğrudan çalıştırır
  -i            Etkileşimli kabuğu başlatır
  -c DOSYA      Proje dosyasını (otag.yml) kullanır
  -v            Sürüm bilgisini gösterir
  -h            Bu yardım mesajını gösterir

Örnekler:
  otag merhaba.otağ                  Dosyayı çalıştırır
  otag -e 'söyle "merhaba"'          Kodu doğrudan çalıştırır
  otag -i                            Etkileşimli kabuğu başlatır
  otag                               Çalışma dizinindeki otag.yml dosyasını çalıştırır
`

var errUsage = errors.New("usage")

func cli(argv []string) (CliResult, error) {
	result := CliResult{Command: COMMAND_RUN}

	opts, optind, err := getopt.Getopts(argv, "hvic:e:")
	if err != nil {
		return result, fmt.Errorf("%w: %s", errUsage, err)
	}

	modes := 0
	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			result.Command = COMMAND_HELP
			return result, nil
		case 'v':
			result.Command = COMMAND_VERSION
			return result, nil
		case 'i':
			result.Command = COMMAND_REPL
			modes++
		case 'e':
			result.Command = COMMAND_EVAL
			result.Code = opt.Value
			modes++
		case 'c':
			result.ManifestPath = opt.Value
		}
	}

	args := argv[optind:]
	if len(args) > 1 {
		return result, fmt.Errorf("%w: yalnızca bir dosya çalıştırılabilir", errUsage)
	}
	if len(args) == 1 {
		result.Path = args[0]
		modes++
	}
	if modes > 1 {
		return result, fmt.Errorf("%w: -e, -i ve DOSYA birlikte kullanılamaz", errUsage)
	}

	if modes == 0 {
		if result.ManifestPath == "" {
			if _, err := os.Stat(config.MANIFEST_FILE); err != nil {
				result.Command = COMMAND_HELP
				return result, errUsage
			}
			result.ManifestPath = config.MANIFEST_FILE
		}
		result.Command = COMMAND_MANIFEST
	}

	return result, nil
}
