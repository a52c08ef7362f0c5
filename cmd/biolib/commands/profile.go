package commands

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// profiler starts and stops the runtime profiles requested through the root
// command flags.
type profiler struct {
	args     *RootArgs
	profiles map[string]*pprof.Profile
	cpu      *os.File
}

func newProfiler(args *RootArgs) *profiler {
	return &profiler{
		args:     args,
		profiles: map[string]*pprof.Profile{},
	}
}

func (p *profiler) start() error {
	if path := p.args.GetCPUProfile(); path != "" {
		//nolint:gosec // G304 path is provided by the user.
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create CPU profile: %w", err)
		}

		err = pprof.StartCPUProfile(f)
		if err != nil {
			must(f.Close())

			return fmt.Errorf("failed to start CPU profile: %w", err)
		}

		p.cpu = f
	}

	if p.args.GetHeapProfile() != "" || p.args.GetMemProfile() != "" {
		runtime.MemProfileRate = p.args.GetMemProfileRate()
	}

	if path := p.args.GetHeapProfile(); path != "" {
		p.profiles[path] = pprof.Lookup("heap")
	}

	if path := p.args.GetMemProfile(); path != "" {
		p.profiles[path] = pprof.Lookup("allocs")
	}

	if path := p.args.GetBlockProfile(); path != "" {
		runtime.SetBlockProfileRate(p.args.GetBlockProfileRate())

		p.profiles[path] = pprof.Lookup("block")
	}

	if path := p.args.GetMutexProfile(); path != "" {
		runtime.SetMutexProfileFraction(p.args.GetMutexProfileRate())

		p.profiles[path] = pprof.Lookup("mutex")
	}

	return nil
}

func (p *profiler) stop() error {
	if p.cpu != nil {
		pprof.StopCPUProfile()
		must(p.cpu.Close())

		p.cpu = nil
	}

	if len(p.profiles) > 0 {
		runtime.GC() //nolint:revive // Get up-to-date statistics for the profile.
	}

	for path, profile := range p.profiles {
		if err := writeProfile(profile, path); err != nil {
			return err
		}

		delete(p.profiles, path)
	}

	return nil
}

func writeProfile(profile *pprof.Profile, path string) error {
	//nolint:gosec // G304 path is provided by the user.
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s profile: %w", profile.Name(), err)
	}

	err = profile.WriteTo(f, 0)
	if err != nil {
		must(f.Close())

		return fmt.Errorf("failed to write %s profile: %w", profile.Name(), err)
	}

	return f.Close()
}
