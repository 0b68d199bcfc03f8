package system

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// HostStats is a point-in-time snapshot of the machine and this process,
// attached to the performance report after a render.
type HostStats struct {
	CPUPercent  float64
	MemUsedMB   float64
	MemTotalMB  float64
	ProcessRSS  float64 // MB
	LogicalCPUs int
}

// SnapshotStats collects host and process usage. Failures degrade to
// zeroed fields: the report is informational, a render must never fail
// because a stats probe did.
func SnapshotStats(pid int32) HostStats {
	var s HostStats

	if counts, err := cpu.Counts(true); err == nil {
		s.LogicalCPUs = counts
	}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		s.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.MemUsedMB = float64(vm.Used) / (1024 * 1024)
		s.MemTotalMB = float64(vm.Total) / (1024 * 1024)
	}
	if proc, err := process.NewProcess(pid); err == nil {
		if info, err := proc.MemoryInfo(); err == nil && info != nil {
			s.ProcessRSS = float64(info.RSS) / (1024 * 1024)
		}
	}

	return s
}

// String formats the snapshot for the render report.
func (s HostStats) String() string {
	return fmt.Sprintf("cpu %.1f%% of %d cores | mem %.0f/%.0fMB | rss %.0fMB",
		s.CPUPercent, s.LogicalCPUs, s.MemUsedMB, s.MemTotalMB, s.ProcessRSS)
}
