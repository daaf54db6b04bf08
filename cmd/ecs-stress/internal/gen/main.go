// Command gen emits the generated component and system registrations the
// stress tool compiles against. Run it through go:generate in the parent
// package.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/tools/imports"
)

func main() {
	componentCount := flag.Int("components", 16, "Number of component types to generate.")
	systemCount := flag.Int("systems", 8, "Number of systems to generate.")
	out := flag.String("out", "components_gen.go", "Output file path.")
	flag.Parse()

	if *systemCount*2 > *componentCount {
		log.Fatalf("need at least %d components for %d pairwise systems", *systemCount*2, *systemCount)
	}

	var buf bytes.Buffer
	writeHeader(&buf, *componentCount, *systemCount)
	writeComponents(&buf, *componentCount)
	writeSpawn(&buf, *componentCount)
	writeSystems(&buf, *systemCount)

	// imports.Process both formats the source and prunes/orders the import
	// block, so the template can stay sloppy about either.
	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("formatting generated source: %v", err)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
	log.Printf("wrote %s: %d components, %d systems", *out, *componentCount, *systemCount)
}

func writeHeader(buf *bytes.Buffer, components, systems int) {
	fmt.Fprintf(buf, "// Code generated by internal/gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "package main\n\n")
	fmt.Fprintf(buf, "import (\n\t\"math/rand\"\n\n\t\"github.com/plus3/strata/ecs\"\n)\n\n")
	fmt.Fprintf(buf, "const (\n\tcomponentCount = %d\n\tsystemCount    = %d\n)\n\n", components, systems)
}

func writeComponents(buf *bytes.Buffer, count int) {
	for i := 0; i < count; i++ {
		fmt.Fprintf(buf, "type G%02d struct{ A, B float64 }\n", i)
	}
	fmt.Fprintf(buf, "\nvar spawnFuncs = [componentCount]func(*rand.Rand) any{\n")
	for i := 0; i < count; i++ {
		fmt.Fprintf(buf, "\tfunc(rng *rand.Rand) any { return G%02d{A: rng.Float64(), B: rng.Float64()} },\n", i)
	}
	fmt.Fprintf(buf, "}\n\n")
}

func writeSpawn(buf *bytes.Buffer, count int) {
	fmt.Fprintf(buf, `// SpawnRandomEntity spawns one entity composed of numComponents distinct
// generated component types.
func SpawnRandomEntity(world *ecs.World, rng *rand.Rand, numComponents int) ecs.EntityId {
	if numComponents > componentCount {
		numComponents = componentCount
	}
	perm := rng.Perm(componentCount)
	components := make([]any, numComponents)
	for i := 0; i < numComponents; i++ {
		components[i] = spawnFuncs[perm[i]](rng)
	}
	return world.Spawn(components...)
}

`)
}

func writeSystems(buf *bytes.Buffer, count int) {
	fmt.Fprintf(buf, "// RegisterAllGeneratedSystems registers %d pairwise update systems.\n", count)
	fmt.Fprintf(buf, "func RegisterAllGeneratedSystems(sched *ecs.Scheduler) {\n")
	for i := 0; i < count; i++ {
		dst := fmt.Sprintf("G%02d", 2*i)
		src := fmt.Sprintf("G%02d", 2*i+1)
		fmt.Fprintf(buf, `	sched.Register(ecs.MakeSystem("Sys%02d", func(w *ecs.World, _ *ecs.Commands) {
		q := ecs.NewQuery(w, ecs.Write[%s](), ecs.Read[%s]())
		q.ForChunks(func(view ecs.ChunkView) {
			dst := ecs.WriteColumn[%s](view)
			src := ecs.ReadColumn[%s](view)
			for i := view.Begin(); i < view.End(); i++ {
				dst[i].A += src[i].B * 0.016
			}
		})
	}, ecs.Write[%s](), ecs.Read[%s]()))
`, i, dst, src, dst, src, dst, src)
	}
	fmt.Fprintf(buf, "}\n")
}
