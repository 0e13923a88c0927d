package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/HunterBartelt/TinyTracker/internal/qr"
	"github.com/HunterBartelt/TinyTracker/internal/wire"
)

// showQR encodes the compact payload and writes it as a QR image next to
// the data files. The payload itself is printed too, for screens that can
// display but not render an image.
func (a *App) showQR(ctx context.Context) {
	payload, err := wire.EncodeCompact(a.store.Snapshot())
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	path := filepath.Join(a.config.DataDir, "tinytrack-sync.png")
	if err := qr.WritePNG(payload, path, a.config.QRSize); err != nil {
		log.Printf("error: %v", err)
		return
	}

	fmt.Printf("QR image written to %s (most recent events only)\n", path)
	fmt.Println(payload)
}

// scan runs one scan session. The decoded text normally arrives from the
// camera integration; in the terminal the "camera" is a paste of the code.
func (a *App) scan(ctx context.Context) {
	src := newLineSource(a.reader)

	_, err := a.scans.Start(ctx, src, func(code string) {
		ds, err := wire.DecodeCompact(code)
		if err != nil {
			log.Printf("Incompatible code version: %v", err)
			return
		}
		added, err := a.store.Import(ctx, ds)
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
		fmt.Printf("Synced %d new records.\n", added)
	})
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	src.Wait()
	_ = a.scans.Stop()
}

func (a *App) showSyncCode(ctx context.Context) {
	code, err := wire.EncodeSyncCode(a.store.Snapshot())
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Println(code)
}

func (a *App) importSyncCode(ctx context.Context) {
	text, err := GetSimpleText(a.reader, "Paste partner code")
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if text == "" {
		return
	}

	ds, err := wire.DecodeSyncCode(text)
	if err != nil {
		log.Printf("Invalid backup code: %v", err)
		return
	}

	added, err := a.store.Import(ctx, ds)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	fmt.Printf("Imported %d records.\n", added)
}

// lineSource adapts the REPL's input stream into a scan.Source: it delivers
// at most one pasted code, then finishes.
type lineSource struct {
	reader *bufio.Reader
	done   chan struct{}
	once   sync.Once
}

func newLineSource(r *bufio.Reader) *lineSource {
	return &lineSource{reader: r, done: make(chan struct{})}
}

func (s *lineSource) Start(ctx context.Context, emit func(code string)) error {
	go func() {
		defer s.finish()
		fmt.Println("Paste the scanned code (empty line to cancel):")
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}
		select {
		case <-ctx.Done():
		default:
			emit(line)
		}
	}()
	return nil
}

func (s *lineSource) Stop() error {
	s.finish()
	return nil
}

func (s *lineSource) finish() {
	s.once.Do(func() { close(s.done) })
}

// Wait blocks until the source has delivered its code or been stopped.
func (s *lineSource) Wait() {
	<-s.done
}
