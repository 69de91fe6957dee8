package assets

import (
	"image"
	_ "image/png" // card elements are PNG files
	"os"

	"golang.org/x/image/font/opentype"
)

// Loader realizes the backing data of registered assets. Tests substitute
// an in-memory implementation.
type Loader interface {
	LoadImage(path string) (image.Image, error)
	LoadFont(path string) (*opentype.Font, error)
}

// FileLoader reads assets from the local filesystem
type FileLoader struct{}

func NewFileLoader() FileLoader {
	return FileLoader{}
}

func (FileLoader) LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (FileLoader) LoadFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return opentype.Parse(data)
}
