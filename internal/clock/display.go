package clock

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultInterval = time.Second
	DefaultLayout   = "Mon 15:04:05"
)

// Frame es lo que la vista renderiza en cada tick.
type Frame struct {
	Time  string `json:"time"`
	Place string `json:"place,omitempty"`
}

// Display emite frames en un intervalo fijo.
type Display struct {
	clock    Clock
	interval time.Duration
	layout   string
	location *time.Location
	locator  Locator
	logger   *zap.Logger
}

type Option func(*Display)

// WithLocator habilita la busqueda de ubicacion de una sola vez.
func WithLocator(l Locator) Option {
	return func(d *Display) { d.locator = l }
}

// WithTimeLocation fija la zona horaria usada para formatear.
func WithTimeLocation(loc *time.Location) Option {
	return func(d *Display) { d.location = loc }
}

func WithLogger(logger *zap.Logger) Option {
	return func(d *Display) { d.logger = logger }
}

func NewDisplay(clk Clock, interval time.Duration, layout string, opts ...Option) *Display {
	if clk == nil {
		clk = Real()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	if layout == "" {
		layout = DefaultLayout
	}
	d := &Display{
		clock:    clk,
		interval: interval,
		layout:   layout,
		location: time.Local,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run emite un frame inmediato y otro por cada tick hasta que ctx
// termina. El ticker se libera en cualquier camino de salida. La
// ubicacion se resuelve en paralelo y nunca bloquea el reloj; si falla
// (o no hay coordenadas) se usa LocationUnavailable.
func (d *Display) Run(ctx context.Context, coords *Coordinates, emit func(Frame)) {
	ticker := d.clock.NewTicker(d.interval)
	defer ticker.Stop()

	var place string
	var places chan string
	if d.locator != nil {
		if coords == nil {
			place = LocationUnavailable
		} else {
			places = make(chan string, 1)
			go d.resolve(ctx, *coords, places)
		}
	}

	emit(d.frame(d.clock.Now(), place))
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C():
			emit(d.frame(now, place))
		case p := <-places:
			place = p
			places = nil
			emit(d.frame(d.clock.Now(), place))
		}
	}
}

// Stream corre Run en una goroutine y entrega los frames por un canal que
// se cierra cuando ctx termina.
func (d *Display) Stream(ctx context.Context, coords *Coordinates) <-chan Frame {
	frames := make(chan Frame, 1)
	go func() {
		defer close(frames)
		d.Run(ctx, coords, func(f Frame) {
			select {
			case frames <- f:
			case <-ctx.Done():
			}
		})
	}()
	return frames
}

func (d *Display) resolve(ctx context.Context, coords Coordinates, out chan<- string) {
	name, err := d.locator.Locate(ctx, coords)
	if err != nil {
		d.logger.Debug("location lookup failed", zap.Error(err))
		name = LocationUnavailable
	}
	out <- name
}

func (d *Display) frame(now time.Time, place string) Frame {
	return Frame{Time: now.In(d.location).Format(d.layout), Place: place}
}
