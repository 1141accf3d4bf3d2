package listfile

import (
	"bufio"
	"fmt"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/darray"
)

// Some constants for batch size defaults
const (
	defaultBatch = 100
	maxBatch     = 10000
)

// Progress is the event type broadcast to subscribers while a file is
// loading.
type Progress struct {
	Loaded int  // number of lines loaded so far
	Done   bool // set on the final event
}

// listFile represents an OS file which will be loaded as a container of
// lines.
type listFile struct {
	path      string         // file name
	info      os.FileInfo    // result from Stat(path)
	file      *os.File       // file handle
	cast      *caster.Caster // broadcaster for async file loading
	arr       *darray.Darray[string]
	lastError error         // remember last I/O error
	done      chan struct{} // closed when loading has finished
}

// Loader tracks an in-flight load of a file into a container.
//
// The container under construction is owned by the loading goroutine until
// Wait returns; clients must not touch it earlier.
type Loader struct {
	lf *listFile
}

// Load reads a file, which must be a text file, and starts loading its
// lines into a container, one element per line in file order. Clients may
// indicate a batch size after which a Progress event is broadcast; 0 lets
// Load use a sensible default.
//
// Loading of large files is done asynchronously, but this is transparent
// to the client: Wait blocks until the container is complete. Opening of
// the file is always done synchronously.
func Load(name string, batch int) (*Loader, error) {
	lf, err := openFile(name)
	if err != nil {
		return nil, err
	}
	if batch <= 0 || batch > maxBatch {
		batch = defaultBatch
	}
	startLoadingFileAsync(lf, batch)
	return &Loader{lf: lf}, nil
}

// Subscribe attaches a subscriber channel to the loader's broadcaster.
// Every subscriber receives all Progress events published after it
// attached; the channel is closed when loading finishes. ok is false if
// loading has already completed.
func (ld *Loader) Subscribe() (ch <-chan interface{}, ok bool) {
	return ld.lf.cast.Sub(nil, 1)
}

// Wait blocks until loading has finished and returns the loaded container.
// After Wait returns, the client exclusively owns the container.
func (ld *Loader) Wait() (*darray.Darray[string], error) {
	<-ld.lf.done
	return ld.lf.arr, ld.lf.lastError
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*listFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	lf := &listFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages when batches are loaded
		arr:  darray.New[string](),
		done: make(chan struct{}),
	}
	return lf, nil
}

func startLoadingFileAsync(lf *listFile, batch int) {
	go func() {
		defer close(lf.done)
		defer lf.cast.Close()
		defer lf.file.Close()
		tracer().Debugf("listfile: loading %s (%d bytes) in batches of %d lines",
			lf.path, lf.info.Size(), batch)
		scanner := bufio.NewScanner(lf.file)
		staged := make([]string, 0, batch)
		loaded := 0
		for scanner.Scan() {
			staged = append(staged, scanner.Text())
			if len(staged) == batch {
				lf.arr.AddAll(staged...)
				loaded += len(staged)
				staged = staged[:0]
				lf.cast.TryPub(Progress{Loaded: loaded})
			}
		}
		if err := scanner.Err(); err != nil {
			lf.lastError = fmt.Errorf("error loading lines: %w", err)
		}
		if len(staged) > 0 {
			lf.arr.AddAll(staged...)
			loaded += len(staged)
		}
		tracer().Debugf("listfile: loaded %d lines from %s", loaded, lf.path)
		lf.cast.TryPub(Progress{Loaded: loaded, Done: true})
	}()
}
