// Package depth placeholder depth map: grayscale + gaussian blur, pengganti model depth (MiDaS) selama modelnya
// belum ada.
package depth

import (
	"fmt"
	"image"
	"image/draw"
	"lintang/pathplanner/pkg/concurrent"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// BlurSigma sigma gaussian blur.
const BlurSigma = 7.0

var imageExts = []string{"*.jpg", "*.png", "*.jpeg"}

// Estimate depth map palsu dari satu gambar.
func Estimate(src image.Image) *image.Gray {
	blurred := imaging.Blur(imaging.Grayscale(src), BlurSigma)
	gray := image.NewGray(blurred.Bounds())
	draw.Draw(gray, gray.Bounds(), blurred, blurred.Bounds().Min, draw.Src)
	return gray
}

type jobResult struct {
	job     concurrent.DepthJobItem
	written bool
	err     error
}

func processImage(job concurrent.DepthJobItem) jobResult {
	img, err := imaging.Open(job.InputPath)
	if err != nil {
		// gambar yang gak bisa dibaca di-skip
		log.Printf("skip %s: %v", job.InputPath, err)
		return jobResult{job: job}
	}
	if err := imaging.Save(Estimate(img), job.OutputPath); err != nil {
		return jobResult{job: job, err: fmt.Errorf("save %s: %w", job.OutputPath, err)}
	}
	return jobResult{job: job, written: true}
}

// ListImages file *.jpg, *.png, *.jpeg di inputDir (urutan per ekstensi).
func ListImages(inputDir string) ([]string, error) {
	images := []string{}
	for _, ext := range imageExts {
		matches, err := filepath.Glob(filepath.Join(inputDir, ext))
		if err != nil {
			return nil, err
		}
		images = append(images, matches...)
	}
	return images, nil
}

// ProcessDir tulis depth map untuk setiap gambar di inputDir ke outputDir/<basename>. onWritten dipanggil dari
// worker goroutine setiap kali satu file selesai ditulis. Return path output sesuai urutan ListImages.
func ProcessDir(inputDir, outputDir string, workers int, onWritten func(path string)) ([]string, error) {
	images, err := ListImages(inputDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return []string{}, nil
	}
	if workers < 1 {
		workers = 1
	}

	wp := concurrent.NewWorkerPool[concurrent.DepthJobItem, jobResult](workers, len(images))
	for _, p := range images {
		wp.AddJob(concurrent.DepthJobItem{
			InputPath:  p,
			OutputPath: filepath.Join(outputDir, filepath.Base(p)),
		})
	}
	wp.Close()

	wp.Start(func(job concurrent.DepthJobItem) jobResult {
		res := processImage(job)
		if res.written && onWritten != nil {
			onWritten(job.OutputPath)
		}
		return res
	})
	wp.Wait()

	written := make(map[string]bool, len(images))
	var firstErr error
	for res := range wp.CollectResults() {
		if res.err != nil && firstErr == nil {
			firstErr = res.err
		}
		written[res.job.InputPath] = res.written
	}
	if firstErr != nil {
		return nil, firstErr
	}

	outputs := []string{}
	for _, p := range images {
		if written[p] {
			outputs = append(outputs, filepath.Join(outputDir, filepath.Base(p)))
		}
	}
	return outputs, nil
}
