package main

import (
	"fmt"
	"os"

	"github.com/oregontales/roadtrip/pkg/world"
)

// validate checks authored world files (JSON or YAML) before they are
// loaded into a server or handed to the seed endpoint.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <world.json|world.yaml> [...]\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, path := range os.Args[1:] {
		fmt.Printf("Validating %s...\n", path)

		wf, err := world.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}

		w := wf.World()
		start := w.StartLocation()
		if start == "" {
			fmt.Fprintf(os.Stderr, "Validation failed: %s has no locations\n", path)
			failed = true
			continue
		}

		fmt.Printf("World file is valid: %d locations, %d events, start %q\n",
			len(wf.Locations), len(wf.Events), start)

		if len(wf.Events) == 0 {
			fmt.Println("Note: empty event catalog; ambient rolls will never fire.")
		}
		for _, loc := range wf.Locations {
			if len(loc.Connections) == 0 {
				fmt.Printf("Note: %q has no outgoing connections.\n", loc.ID)
			}
		}
	}

	if failed {
		os.Exit(1)
	}
}
