// Command export writes the test cases as JSON scene files, which can be
// rendered with cmd/trirender.
// Run from the module root directory.
package main

import (
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/trirender"
	"seehuhn.de/go/trirender/testcases"
)

const sceneDir = "testdata/scenes"

func main() {
	if err := os.MkdirAll(sceneDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			scene := tc.Scene()
			scene.Output = name + ".bmp"

			if err := writeScene(filepath.Join(sceneDir, name+".json"), scene); err != nil {
				panic(err)
			}
		}
	}
}

func writeScene(fname string, scene *trirender.Scene) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return trirender.WriteScene(f, scene)
}
