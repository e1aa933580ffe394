// Command ib2cdemo assembles a small obstacle-avoidance-versus-cruise
// behavior hierarchy and runs it for a fixed duration, printing the fused
// output every five cycles. It exists to exercise the runtime end to end, not
// as a reusable library surface.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ib2crun/ib2c/behavior"
	"github.com/ib2crun/ib2c/group"
	"github.com/ib2crun/ib2c/internal/rtlog"
	"github.com/ib2crun/ib2c/metasignal"
	"github.com/ib2crun/ib2c/metrics"
	"github.com/ib2crun/ib2c/module"
	"github.com/ib2crun/ib2c/port"
	"github.com/ib2crun/ib2c/scheduler"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		runFor    time.Duration
		cycleTime time.Duration
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "ib2cdemo",
		Short: "Run a small iB2C behavior hierarchy and print its fused output",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, runFor, cycleTime, verbose)
		},
	}

	cmd.Flags().DurationVar(&runFor, "for", 2*time.Second, "how long to run before exiting")
	cmd.Flags().DurationVar(&cycleTime, "cycle", 20*time.Millisecond, "cycle time for every module")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable structured logging to stderr")

	return cmd
}

// obstacleAvoidance reports a target speed that falls as a simulated
// obstacle gets closer, with activity rising the same way: when nothing is
// near, this behavior goes quiet and lets cruise control win the fusion.
type obstacleAvoidance struct {
	tick     int
	distance *port.Send[float64]
	target   metasignal.MetaSignal
}

func newObstacleAvoidance() *obstacleAvoidance {
	return &obstacleAvoidance{distance: port.NewSend(10.0)}
}

func (o *obstacleAvoidance) UpdatePorts() {}

func (o *obstacleAvoidance) Transfer() {
	o.tick++
	d := 10.0 - 8.0*math.Abs(math.Sin(float64(o.tick)/40.0))
	o.distance.Send(d)
	o.target = metasignal.New(clamp01((10.0 - d) / 10.0))
}

func (o *obstacleAvoidance) TargetRating() metasignal.MetaSignal { return o.target }

// DistancePort exposes the obstacle distance as a data source other
// modules (here, the fusion) can subscribe to.
func (o *obstacleAvoidance) DistancePort() *port.Inner[float64] { return o.distance.Inner() }

// cruiseControl holds a constant moderate target rating, representing a
// behavior that always wants to contribute but loses the fusion whenever
// obstacle avoidance's activity rises above 0.4.
type cruiseControl struct{}

func (cruiseControl) UpdatePorts() {}
func (cruiseControl) Transfer()    {}
func (cruiseControl) TargetRating() metasignal.MetaSignal { return metasignal.New(0.4) }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func run(cmd *cobra.Command, runFor, cycleTime time.Duration, verbose bool) error {
	logger := rtlog.Disabled()
	if verbose {
		logger = rtlog.New(os.Stderr, zerolog.InfoLevel)
	}

	reg := prometheus.NewRegistry()
	mx := metrics.New()
	mx.MustRegister(reg)

	avoid := behavior.NewModule[*obstacleAvoidance](newObstacleAvoidance())
	cruise := behavior.NewModule[cruiseControl](cruiseControl{})

	fusion := behavior.NewMaximumFusionModule[float64](0, mx.FusionSink("speed"))
	fusion.AddModule(avoid.Inner().DistancePort(), avoid.ActivityPort().Inner())
	cruiseSpeed := port.NewSend(12.0)
	fusion.AddModule(cruiseSpeed.Inner(), cruise.ActivityPort().Inner())

	g := behavior.NewGroup[string]("demo-root", module.GroupThread)
	g.SetCharacteristicModule(fusion)

	gb := g.Builder()
	group.AddModule(gb, module.NewBuilder[*behavior.Module[*obstacleAvoidance]](avoid, cycleTime, module.GroupThread))
	group.AddModule(gb, module.NewBuilder[*behavior.Module[cruiseControl]](cruise, cycleTime, module.GroupThread))
	group.AddModule(gb, module.NewBuilder[*behavior.Fusion[*behavior.MaximumFusion[float64], float64]](fusion, cycleTime, module.NewThread))

	logger.Info().Dur("cycle", cycleTime).Dur("for", runFor).Msg("spawning demo hierarchy")

	spawned, err := gb.Spawn(group.WithContainerOptions(
		scheduler.WithMetricsFactory(mx.ContainerSinkFactory()),
		scheduler.WithLogger(logger),
	))
	if err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	spawned.Wait()

	deadline := time.Now().Add(runFor)
	ticker := time.NewTicker(cycleTime * 5)
	defer ticker.Stop()

	for time.Now().Before(deadline) {
		<-ticker.C
		out := port.NewReceive(0.0)
		out.ConnectToSource(fusion.Output.Inner())
		out.Update()
		fmt.Fprintf(cmd.OutOrStdout(), "target_speed=%.2f activity=%.2f\n", out.GetData(), fusion.ActivityPort().Inner().ReadCached().Value())
	}

	return nil
}
