package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	otag "github.com/HicaroD/Otag"
	"github.com/HicaroD/Otag/config"
)

const (
	PROMPT_MAIN = "otağ> "
	PROMPT_CONT = "...   "
)

const BANNER = `Otağ etkileşimli kabuk. Çıkmak için :çık yazın veya Ctrl-D'ye basın.`

func repl(rt *otag.Runtime) int {
	fmt.Println(BANNER)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	historyPath, err := config.HistoryPath()
	if err == nil {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	session := rt.NewSession()
	for {
		code, ok := readUntilComplete(ln)
		if !ok {
			fmt.Println()
			return 0
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch trimmed {
			case ":çık", ":q":
				return 0
			case ":değişkenler":
				for _, v := range session.Variables() {
					fmt.Println(v)
				}
			default:
				fmt.Println("bilinmeyen komut, komutlar: :değişkenler, :çık")
			}
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		if err := session.Eval(code); err != nil {
			fmt.Fprint(os.Stderr, err)
		}
	}
}

// readUntilComplete keeps prompting while the input so far stops in the
// middle of a statement.
func readUntilComplete(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := PROMPT_MAIN
		if b.Len() > 0 {
			prompt = PROMPT_CONT
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			if b.Len() > 0 && errors.Is(err, liner.ErrPromptAborted) {
				// Ctrl-C drops the pending block only
				b.Reset()
				continue
			}
			return "", false
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if otag.Complete(src) {
			return src, true
		}
	}
}
