package drainage

import (
	"github.com/alexiusacademia/godrain/internal/config"
	"github.com/alexiusacademia/godrain/internal/hydraulics"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Checker verifies one site configuration against its design storm
type Checker struct {
	cfg config.Config
	log *zap.Logger
}

// NewChecker creates a Checker. A nil logger disables logging.
func NewChecker(cfg config.Config, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{
		cfg: cfg,
		log: logger.Named("drainage"),
	}
}

// Report holds the complete result of a verification run
type Report struct {
	Config config.Config

	// Demand
	IntensityMMH float64 // rain intensity (mm/h)
	RainVolume   float64 // runoff volume of the storm (L)
	TrayVolume   float64 // drip tray volume (L)
	RequiredFlow float64 // required OWS capacity (L/s)

	// Per-branch solver output
	Vertical   *hydraulics.VerticalResult
	Horizontal *hydraulics.HorizontalResult

	// Branch aggregation
	VerticalCheck   *hydraulics.Sufficiency
	HorizontalCheck *hydraulics.Sufficiency

	// Status
	IsSufficient bool
	Message      string
}

// Demand computes the storm volume and the required separator flow only
func (c *Checker) Demand() (*Report, error) {
	rain := c.cfg.Rainfall
	report := &Report{
		Config:       c.cfg,
		IntensityMMH: hydraulics.IntensityMillimetresPerHour(rain.Intensity),
		TrayVolume:   rain.TrayVolume * hydraulics.LitresPerCubicMetre,
	}

	var err error
	report.RainVolume, err = hydraulics.RainVolume(rain.Intensity, rain.CatchmentArea, rain.DurationMinutes, rain.RunoffCoefficient)
	if err != nil {
		return nil, errors.Wrap(err, "rain volume")
	}
	report.RequiredFlow, err = hydraulics.RequiredFlow(rain.Intensity, rain.CatchmentArea, rain.DurationMinutes, rain.RunoffCoefficient)
	if err != nil {
		return nil, errors.Wrap(err, "required flow")
	}
	c.log.Debug("required flow",
		zap.Float64("volume_l", report.RainVolume),
		zap.Float64("flow_lps", report.RequiredFlow))

	return report, nil
}

// Run computes the required flow and checks both branch types against it
func (c *Checker) Run() (*Report, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}

	report, err := c.Demand()
	if err != nil {
		return nil, err
	}

	report.Vertical, report.VerticalCheck, err = c.vertical(report.RequiredFlow)
	if err != nil {
		return nil, err
	}
	report.Horizontal, report.HorizontalCheck, err = c.horizontal(report.RequiredFlow)
	if err != nil {
		return nil, err
	}

	report.IsSufficient = report.VerticalCheck.IsSufficient && report.HorizontalCheck.IsSufficient
	switch {
	case report.IsSufficient:
		report.Message = "The drainage system is hydraulically sufficient to handle peak flow."
	case !report.VerticalCheck.IsSufficient && !report.HorizontalCheck.IsSufficient:
		report.Message = "The pipe system cannot maintain required flow - both vertical and horizontal branches are undersized."
	case !report.VerticalCheck.IsSufficient:
		report.Message = "The pipe system cannot maintain required flow - check vertical sizing."
	default:
		report.Message = "The pipe system cannot maintain required flow - check horizontal sizing."
	}

	c.log.Info("verification finished",
		zap.Bool("sufficient", report.IsSufficient),
		zap.Float64("vertical_total_lps", report.VerticalCheck.TotalCapacity),
		zap.Float64("horizontal_total_lps", report.HorizontalCheck.TotalCapacity))

	return report, nil
}

func (c *Checker) vertical(required float64) (*hydraulics.VerticalResult, *hydraulics.Sufficiency, error) {
	p := c.cfg.Pipe
	result, err := hydraulics.NewVerticalPipe(p.Diameter, p.VerticalHeight, c.cfg.Flow.FillingVertical).Evaluate()
	if err != nil {
		return nil, nil, errors.Wrap(err, "vertical pipe")
	}
	c.log.Debug("vertical branch",
		zap.Float64("area_m2", result.Area),
		zap.Float64("velocity_ms", result.Velocity),
		zap.Float64("capacity_lps", result.Capacity))

	check, err := hydraulics.Verify(required, result.Capacity, p.BranchCount)
	if err != nil {
		return nil, nil, errors.Wrap(err, "vertical pipe")
	}
	return result, check, nil
}

func (c *Checker) horizontal(required float64) (*hydraulics.HorizontalResult, *hydraulics.Sufficiency, error) {
	p := c.cfg.Pipe
	pipe := hydraulics.NewHorizontalPipe(p.Diameter, p.HorizontalLength, p.Slope, p.Roughness, p.Viscosity, c.cfg.Flow.FillingHorizontal)
	result, err := pipe.Evaluate()
	if err != nil {
		return nil, nil, errors.Wrap(err, "horizontal pipe")
	}
	c.log.Debug("horizontal branch",
		zap.Float64("head_loss_m", result.HeadLoss),
		zap.Float64("initial_velocity_ms", result.InitialVelocity),
		zap.Float64("reynolds", result.Reynolds),
		zap.Stringer("regime", result.Regime),
		zap.Float64("friction_factor", result.FrictionFactor),
		zap.Float64("velocity_ms", result.Velocity),
		zap.Float64("capacity_lps", result.Capacity))

	check, err := hydraulics.Verify(required, result.Capacity, p.BranchCount)
	if err != nil {
		return nil, nil, errors.Wrap(err, "horizontal pipe")
	}
	return result, check, nil
}
