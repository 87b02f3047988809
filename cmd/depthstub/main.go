package main

import (
	"flag"
	"fmt"
	"lintang/pathplanner/pkg/depth"
	"log"
	"runtime"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

var (
	inputDir  = flag.String("input", "", "folder gambar input (*.jpg, *.png, *.jpeg)")
	outputDir = flag.String("output", "", "folder output depth map")
	workers   = flag.Int("workers", runtime.NumCPU(), "jumlah worker")
)

func main() {
	flag.Parse()
	if *inputDir == "" || *outputDir == "" {
		flag.Usage()
		log.Fatal("-input dan -output wajib diisi")
	}

	images, err := depth.ListImages(*inputDir)
	if err != nil {
		log.Fatal(err)
	}

	bar := progressbar.NewOptions(len(images),
		progressbar.OptionSetWriter(ansi.NewAnsiStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/1][reset] membuat depth map..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	written, err := depth.ProcessDir(*inputDir, *outputDir, *workers, func(path string) {
		bar.Add(1)
	})
	if err != nil {
		log.Fatal(err)
	}
	bar.Finish()
	fmt.Println("")

	for _, p := range written {
		fmt.Println("wrote", p)
	}
}
