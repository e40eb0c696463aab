// animsample samples the demo rig's animation at chosen times and prints the
// resulting joint and bone matrices as YAML.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/bugsyth/bugsyth-engine/internal/logger"
	"github.com/bugsyth/bugsyth-engine/pkg/animation"
)

var (
	flagTimes = flag.String("times", "0,0.5,1,1.5,2", "Comma-separated sample times in seconds")
	flagWorld = flag.Bool("world", false, "Also accumulate world-space joint transforms")
	flagLoop  = flag.Bool("loop", false, "Wrap times past the clip duration")
	flagLevel = flag.String("level", "warn", "Log level (logs go to stderr)")
	flagOut   = flag.String("o", "", "Write YAML to this file instead of stdout")
)

// report is the YAML document animsample prints.
type report struct {
	Rig      string   `yaml:"rig"`
	Joints   int      `yaml:"joints"`
	Duration float32  `yaml:"duration"`
	World    bool     `yaml:"world"`
	Samples  []sample `yaml:"samples"`
}

type sample struct {
	Time    float32       `yaml:"time"`
	Sampled float32       `yaml:"sampled_at"`
	Joints  []jointSample `yaml:"joints"`
}

// Matrices are written as four column arrays, as uploaded to the GPU.
type jointSample struct {
	Joint int            `yaml:"joint"`
	Local [4][4]float32  `yaml:"local,flow"`
	World *[4][4]float32 `yaml:"world,omitempty,flow"`
	Bone  [4][4]float32  `yaml:"bone,flow"`
}

func main() {
	flag.Parse()

	log, err := logger.New(logger.Options{Level: *flagLevel, Console: true, Stderr: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	logger.Set(log)
	defer logger.Sync()

	times, err := parseTimes(*flagTimes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rep, err := run(times, *flagWorld, *flagLoop, logger.Named("animation"))
	if err != nil {
		logger.Error("sampling failed", zap.Error(err))
		os.Exit(1)
	}

	if err := writeOutput(*flagOut, rep); err != nil {
		logger.Error("writing report", zap.Error(err))
		os.Exit(1)
	}
}

// writeOutput writes rep to path, or to stdout when path is empty.
func writeOutput(path string, rep *report) (err error) {
	if path == "" {
		return writeReport(os.Stdout, rep)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return writeReport(f, rep)
}

// writeReport encodes rep as YAML. The encoder is closed so buffered output
// reaches w before the error is reported.
func writeReport(w io.Writer, rep *report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}
	return nil
}

// run builds the rig and samples it at every time.
func run(times []float32, world, loop bool, log *zap.Logger) (*report, error) {
	skel, err := newRig()
	if err != nil {
		return nil, fmt.Errorf("building rig: %w", err)
	}
	clips, err := newClips()
	if err != nil {
		return nil, fmt.Errorf("building clips: %w", err)
	}

	anims := animation.NewAnimations(clips, animation.WithLogger(log))
	if err := anims.Validate(skel); err != nil {
		return nil, err
	}

	rep := &report{
		Rig:      "two-joint arm",
		Joints:   len(skel.Joints),
		Duration: anims.Duration(),
		World:    world,
	}
	for _, t := range times {
		at := t
		if loop {
			at = animation.LoopTime(t, rep.Duration)
		}

		local := anims.AnimatedTransforms(skel, at)
		var global [][4][4]float32
		if world {
			for _, m := range animation.WorldTransforms(skel, local) {
				global = append(global, m.ColArrays())
			}
		}
		skel.UpdateBoneMatrices(local)

		s := sample{Time: t, Sampled: at}
		for i := range skel.Joints {
			js := jointSample{
				Joint: i,
				Local: local[i].ColArrays(),
				Bone:  skel.BoneMatrices[i].ColArrays(),
			}
			if world {
				js.World = &global[i]
			}
			s.Joints = append(s.Joints, js)
		}
		rep.Samples = append(rep.Samples, s)
		log.Debug("sampled", zap.Float32("time", t), zap.Float32("at", at))
	}
	return rep, nil
}

// parseTimes parses a comma-separated list of finite, non-negative seconds.
func parseTimes(s string) ([]float32, error) {
	var times []float32
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid time %q: %w", field, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid time %q: not finite", field)
		}
		if v < 0 {
			return nil, fmt.Errorf("invalid time %q: negative", field)
		}
		times = append(times, float32(v))
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("no sample times given")
	}
	return times, nil
}
