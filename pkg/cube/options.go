package cube

// Option configures a Cube.
type Option func(*config)

type config struct {
	historyCap int
}

func defaultConfig() *config {
	return &config{historyCap: DefaultHistoryCap}
}

// WithHistoryCap sets how many snapshots the undo/redo ring keeps.
// Values below 1 fall back to DefaultHistoryCap.
func WithHistoryCap(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.historyCap = n
		}
	}
}
