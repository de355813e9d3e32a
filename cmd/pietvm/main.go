// Command pietvm runs a Piet program given as a raster image.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/bdwalton/pietvm/imagesrc"
	"github.com/bdwalton/pietvm/interp"
)

func usage() {
	fmt.Printf("Usage: %s <image path> <codel size>\n", os.Args[0])
}

func main() {
	if len(os.Args) != 3 {
		usage()
		os.Exit(1)
	}

	codelSize, err := strconv.Atoi(os.Args[2])
	if err != nil || codelSize <= 0 {
		usage()
		os.Exit(1)
	}

	g, err := imagesrc.Load(os.Args[1], codelSize)
	if err != nil {
		log.Printf("Couldn't load %q: %v", os.Args[1], err)
		os.Exit(1)
	}

	e := interp.New(g, os.Stdin, os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := e.Run(ctx); err != nil {
		log.Printf("Run error: %v", err)
		os.Exit(1)
	}

	os.Exit(0)
}
