package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/kydenul/log"

	"github.com/dashtaisen/chinese-roots/cedict"
)

func exit(err error) {
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		exit(errors.New("usage: cedictcsv <cedict.u8> <dest.csv>"))
	}

	logger := log.NewLog(&log.Options{Level: "info"})
	src, dst := flag.Arg(0), flag.Arg(1)

	logger.Infof("converting %s", src)
	exit(cedict.ConvertFile(src, dst))
	logger.Infof("wrote %s", dst)
}
