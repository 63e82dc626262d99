package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/milk9111/bonecollector/animation"
	"github.com/milk9111/bonecollector/prefabs"
)

// catalogs prints the animation catalogs the prefabs produce, so clip
// tables can be checked without starting the game.
func main() {
	prefab := flag.String("prefab", "all", "which prefab to dump: skelly, parts or all")
	owner := flag.Uint64("owner", 1, "owner handle given to per-creature catalogs")
	flag.Parse()

	var catalogs []*animation.Catalog
	if *prefab == "all" || *prefab == "skelly" {
		spec, err := prefabs.LoadSkellySpec()
		if err != nil {
			fail(err)
		}
		start, err := animation.ParseArchetype("skelly_" + spec.StartForm)
		if err != nil {
			fail(err)
		}
		cs, err := spec.Catalogs(*owner, start)
		if err != nil {
			fail(err)
		}
		catalogs = append(catalogs, cs...)
	}
	if *prefab == "all" || *prefab == "parts" {
		spec, err := prefabs.LoadPartsSpec()
		if err != nil {
			fail(err)
		}
		cs, err := spec.Catalogs()
		if err != nil {
			fail(err)
		}
		catalogs = append(catalogs, cs...)
	}
	if len(catalogs) == 0 {
		fail(fmt.Errorf("unknown prefab %q", *prefab))
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENE\tARCHETYPE\tOWNER\tACTIVE\tCLIP\tDURATION\tREF")
	for _, c := range catalogs {
		for _, id := range c.Clips() {
			entry, _ := c.Lookup(id)
			fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%s\t%s\t%s\n", c.Scene, c.Archetype, c.Owner, c.Activated, id, entry.Duration, entry.Clip)
		}
	}
	if err := tw.Flush(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "catalogs:", err)
	os.Exit(1)
}
