package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/strata/ecs"
)

type archetypeRow struct {
	Signature  uint64
	Components int
	Chunks     int
	Rows       int
}

// ArchetypeViewer lists every archetype with its storage shape, sortable by
// column, with a bar visualizing relative entity counts.
type ArchetypeViewer struct {
	rows          []archetypeRow
	lastCount     int
	sortColumn    int
	sortAscending bool
}

// NewArchetypeViewer creates a viewer sorted by row count, descending.
func NewArchetypeViewer() *ArchetypeViewer {
	return &ArchetypeViewer{
		sortColumn:    3,
		sortAscending: false,
	}
}

// Render draws the viewer window.
func (av *ArchetypeViewer) Render(world *ecs.World) {
	if !imgui.BeginV("Archetype Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	av.rebuild(world)

	maxRows := 0
	for _, row := range av.rows {
		if row.Rows > maxRows {
			maxRows = row.Rows
		}
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ArchetypeTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Signature")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Chunks")
		imgui.TableSetupColumn("Rows")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			av.sortColumn = int(spec.ColumnIndex())
			av.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			av.sortRows()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, row := range av.rows {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", row.Signature))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Components))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Chunks))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Rows))

			if maxRows > 0 {
				barWidth := float32(row.Rows) / float32(maxRows) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}

func (av *ArchetypeViewer) rebuild(world *ecs.World) {
	archetypes := world.Archetypes()
	if len(archetypes) != av.lastCount {
		av.rows = av.rows[:0]
		av.lastCount = len(archetypes)
	} else {
		// Same archetype set; refresh row counts in place. Rows may have been
		// sorted, so match them to archetypes by signature hash.
		for _, arch := range archetypes {
			hash := arch.Signature().Hash
			for i := range av.rows {
				if av.rows[i].Signature == hash {
					av.rows[i].Chunks = arch.ChunkCount()
					av.rows[i].Rows = arch.EntityCount()
					break
				}
			}
		}
		if av.sortColumn == 3 {
			av.sortRows()
		}
		return
	}

	for _, arch := range archetypes {
		av.rows = append(av.rows, archetypeRow{
			Signature:  arch.Signature().Hash,
			Components: len(arch.Components()),
			Chunks:     arch.ChunkCount(),
			Rows:       arch.EntityCount(),
		})
	}
	av.sortRows()
}

func (av *ArchetypeViewer) sortRows() {
	sort.Slice(av.rows, func(i, j int) bool {
		a, b := av.rows[i], av.rows[j]
		var less bool

		switch av.sortColumn {
		case 0:
			less = a.Signature < b.Signature
		case 1:
			less = a.Components < b.Components
		case 2:
			less = a.Chunks < b.Chunks
		default:
			less = a.Rows < b.Rows
		}

		if !av.sortAscending {
			return !less
		}
		return less
	})
}
