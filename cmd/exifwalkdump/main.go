// Command exifwalkdump reads a JPEG or bare TIFF file and prints every
// populated directory, its tags, and any structural-fault errors recorded
// during decoding. It exercises the full walker end to end as a smoke test
// a human can run.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/halvorsen/exifwalk"
	"github.com/halvorsen/exifwalk/tagname"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	tiff := flag.Bool("tiff", false, "treat input as a bare TIFF stream instead of a JPEG file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: exifwalkdump [-v] [-tiff] <file>")
		os.Exit(2)
	}

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	buf, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	store := exifwalk.NewStore()
	opts := []exifwalk.Option{exifwalk.WithLogger(logrus.NewEntry(logger))}

	if *tiff {
		exifwalk.ExtractTiff(buf, store, opts...)
	} else {
		processor := exifwalk.NewExifSegmentProcessor(opts...)
		if err := exifwalk.ScanJPEGSegments(buf, store, processor); err != nil {
			log.Fatal(err)
		}
	}

	dump(store)
}

func dump(store *exifwalk.Store) {
	for _, dir := range store.Directories() {
		fmt.Printf("== %s ==\n", dir.Kind)
		for _, tagID := range dir.Tags() {
			v, _ := dir.Value(tagID)
			fmt.Printf("  %-28s %s\n", tagname.Name(tagID), v.GoString())
		}
		for _, e := range dir.Errors() {
			fmt.Printf("  ! %s\n", e)
		}
		if thumb := dir.ThumbnailData(); len(thumb) > 0 {
			fmt.Printf("  thumbnail: %d bytes\n", len(thumb))
		}
	}
}
