package seamcarver

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/esimov/seamcarver/utils"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// validExtensions lists the supported image file extensions.
var validExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif"}

// Ops holds the source and destination of a resize operation.
// Src can be a file, a directory, an URL or the pipe name (stdin),
// Dst a file, a directory or the pipe name (stdout).
type Ops struct {
	Src, Dst, PipeName string
	Workers            int
}

// result holds the relevant information about the resizing process of a single file.
type result struct {
	path string
	err  error
}

// Execute runs the image resizing process over the source defined by op.
// A directory source is processed recursively by a pool of concurrent workers,
// each of them owning its own Carver.
func (p *Processor) Execute(op *Ops) error {
	src := op.Src

	// Check if source path is a local image or URL.
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if err != nil {
			return fmt.Errorf("failed to load the source image: %w", err)
		}
		f.Close()
		defer os.Remove(f.Name())

		src = f.Name()
	}

	var (
		fs  os.FileInfo
		err error
	)
	// Check if the source is a pipe name or a regular file.
	if src == op.PipeName {
		fs, err = os.Stdin.Stat()
	} else {
		fs, err = os.Stat(src)
	}
	if err != nil {
		return fmt.Errorf("failed to load the source image: %w", err)
	}

	if p.Spinner != nil {
		p.Spinner.Start()
		defer p.Spinner.Stop()
	}

	switch mode := fs.Mode(); {
	case mode.IsDir():
		return p.executeDir(op, src)
	case mode.IsRegular() || mode&os.ModeNamedPipe != 0:
		ext := strings.ToLower(filepath.Ext(op.Dst))
		if !isValidExtension(ext, validExtensions) && op.Dst != op.PipeName {
			return fmt.Errorf("%v file type not supported", ext)
		}
		err := op.process(p, src, op.Dst)
		op.printOpStatus(op.Dst, err)

		return err
	default:
		return fmt.Errorf("unsupported source: %s", op.Src)
	}
}

// executeDir resizes every supported image from the src directory tree into the destination directory.
func (p *Processor) executeDir(op *Ops, src string) error {
	if err := os.MkdirAll(op.Dst, 0755); err != nil {
		return fmt.Errorf("unable to create the destination directory: %w", err)
	}

	workers := op.Workers
	// Limit the concurrently running workers to maxWorkers.
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}

	ch := make(chan result)
	done := make(chan struct{})
	defer close(done)

	paths, errc := walkDir(done, src, validExtensions)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			op.consumer(p, op.Dst, ch, done, paths)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var failed int
	for res := range ch {
		if res.err != nil {
			failed++
		}
		op.printOpStatus(res.path, res.err)
	}
	if err := <-errc; err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d image(s) could not be resized", failed)
	}
	return nil
}

// consumer reads the path names from the paths channel and calls the resizing processor against the source image.
func (op *Ops) consumer(
	p *Processor,
	dest string,
	res chan<- result,
	done <-chan struct{},
	paths <-chan string,
) {
	for src := range paths {
		dst := filepath.Join(dest, filepath.Base(src))
		err := op.process(p, src, dst)

		select {
		case <-done:
			return
		case res <- result{path: src, err: err}:
		}
	}
}

// process calls the resizer method over the source image and returns the error in case exists.
// On failure the partially written destination file is removed.
func (op *Ops) process(p *Processor, in, out string) error {
	src, dst, err := op.pathToFile(in, out)
	if err != nil {
		return err
	}
	defer func() {
		if f, ok := src.(*os.File); ok && f != os.Stdin {
			if err := f.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}
	}()

	err = p.Process(src, dst)

	if f, ok := dst.(*os.File); ok && f != os.Stdout {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(f.Name())
		}
	}
	return err
}

// pathToFile converts the source and destination paths to readable and writable files.
func (op *Ops) pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		src io.Reader
		dst io.Writer
		err error
	)
	// Check if the source is a pipe name or a regular file.
	if in == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdin")
		}
		src = os.Stdin
	} else {
		src, err = os.Open(in)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to open the source file: %w", err)
		}
	}

	// Check if the destination is a pipe name or a regular file.
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if f, ok := src.(*os.File); ok && f != os.Stdin {
				f.Close()
			}
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		dst, err = os.Create(out)
		if err != nil {
			if f, ok := src.(*os.File); ok && f != os.Stdin {
				f.Close()
			}
			return nil, nil, fmt.Errorf("unable to create the destination file: %w", err)
		}
	}
	return src, dst, nil
}

// printOpStatus displays the relevant information about the image resizing process.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		log.Printf("%s %s",
			utils.DecorateText(fmt.Sprintf("\nError resizing the image %s:", filepath.Base(fname)), utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err), utils.DefaultMessage),
		)
		return
	}
	if fname != op.PipeName {
		log.Printf("\nThe image has been saved as: %s\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
		)
	}
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each supported file to a new channel.
// It finishes in case the done channel is getting closed.
func walkDir(
	done <-chan struct{},
	src string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !f.Mode().IsRegular() {
				return nil
			}
			if !isValidExtension(strings.ToLower(filepath.Ext(f.Name())), srcExts) {
				return nil
			}

			select {
			case <-done:
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string, extensions []string) bool {
	for _, ex := range extensions {
		if ex == ext {
			return true
		}
	}
	return false
}
