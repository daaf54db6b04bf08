package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/strata/ecs"
)

// PerformanceStats plots frame times and shows world storage and scheduler
// execution statistics.
type PerformanceStats struct {
	scheduler     *ecs.Scheduler
	timer         FrameTimer
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewPerformanceStats creates a stats window keeping the given number of
// frame samples. The scheduler may be nil; its section is skipped then.
func NewPerformanceStats(scheduler *ecs.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		scheduler:     scheduler,
		timer:         NewFrameTimer(),
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Render draws the stats window.
func (ps *PerformanceStats) Render(world *ecs.World) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	deltaTime := ps.timer.DeltaTime()
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	stats := world.CollectStats()

	imgui.Text(fmt.Sprintf("Alive Entities: %d", stats.AliveEntities))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Chunks: %d (rows: %d)", stats.TotalChunks, stats.TotalRows))
	imgui.Text(fmt.Sprintf("Epoch: %d", stats.Epoch))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Archetype Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ArchStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Signature")
			imgui.TableSetupColumn("Chunks")
			imgui.TableSetupColumn("Capacity")
			imgui.TableSetupColumn("Rows")
			imgui.TableHeadersRow()

			for _, arch := range stats.Archetypes {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%X", arch.Signature))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.ChunkCount))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.ChunkCapacity))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.RowCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if ps.scheduler != nil {
		if imgui.TreeNodeStr("System Timings") {
			for _, sys := range ps.scheduler.Stats().Systems {
				imgui.BulletText(fmt.Sprintf("%s: avg %s, last %s (%d runs)",
					sys.Name, sys.AvgDuration, sys.LastDuration, sys.ExecutionCount))
			}
			imgui.TreePop()
		}
	}

	imgui.End()
}

// FrameTimer measures wall-clock time between successive frames.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() FrameTimer {
	return FrameTimer{lastFrameTime: time.Now()}
}

// DeltaTime returns the seconds elapsed since the previous call.
func (ft *FrameTimer) DeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
