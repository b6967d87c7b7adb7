package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/underworld/carrays-go/pkg/carrays"
	"github.com/underworld/carrays-go/pkg/carrays/logging"
)

func main() {
	length := flag.Int("len", 5, "number of elements per array")
	verbose := flag.Bool("v", false, "log array allocation and release")
	flag.Parse()

	log.Printf("carrays-go version: %s", carrays.WrapperVersion())
	log.Printf("storage backend: %s (native=%v)", carrays.BackendName(), carrays.NativeBackend())

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	cfg := carrays.Config{
		Logger: logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))),
	}

	if err := run(cfg, *length); err != nil {
		log.Fatalf("check failed: %v", err)
	}
	fmt.Println("all arrays ok")
}

func run(cfg carrays.Config, n int) error {
	if err := check(cfg, n, func(i int) float64 { return float64(i) * 1.5 }); err != nil {
		return err
	}
	if err := check(cfg, n, func(i int) float32 { return float32(i) + 0.25 }); err != nil {
		return err
	}
	if err := check(cfg, n, func(i int) int32 { return int32(i * 10) }); err != nil {
		return err
	}
	return check(cfg, n, func(i int) uint32 { return ^uint32(0) - uint32(i) })
}

func check[T carrays.Numeric](cfg carrays.Config, n int, value func(int) T) error {
	arr, err := carrays.NewWithConfig[T](cfg, n)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := arr.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	for i := range n {
		if err := arr.Set(i, value(i)); err != nil {
			return err
		}
	}
	for i := range n {
		got, err := arr.Get(i)
		if err != nil {
			return err
		}
		if want := value(i); got != want {
			return fmt.Errorf("%s: index %d holds %v, want %v", arr, i, got, want)
		}
	}
	if _, err := arr.Get(n); err == nil {
		return fmt.Errorf("%s: read past the end succeeded", arr)
	}

	view, err := arr.Raw()
	if err != nil {
		return err
	}
	fmt.Printf("%-12s ptr=%p bytes=%d\n", arr, view.Pointer(), view.Size())
	return nil
}
