// Package clock implementa el reloj del header: un valor que se
// actualiza cada intervalo mientras la vista que lo muestra sigue viva,
// mas una busqueda de ubicacion opcional y de mejor esfuerzo.
package clock

import "time"

// Clock abstrae el paquete time para poder inyectar tickers en tests.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker entrega ticks por C hasta que se llama Stop.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Real devuelve un Clock respaldado por el paquete time.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTicker(d time.Duration) Ticker {
	return realTicker{ticker: time.NewTicker(d)}
}

type realTicker struct {
	ticker *time.Ticker
}

func (t realTicker) C() <-chan time.Time { return t.ticker.C }

func (t realTicker) Stop() { t.ticker.Stop() }
