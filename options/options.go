package options

// NewClientOption is implemented by every option accepted by ftps.NewClient. T is the type being configured.
// Example:
// ```
//
//	type portOpt struct{ port int }
//	func (o *portOpt) Apply(c *ftps.Client) {
//		c.options.Port = o.port
//	}
//	func (o *portOpt) NewClientOptionName() string {
//		return "port"
//	}
//
// ```
type NewClientOption[T any] interface {
	Apply(*T)
	NewClientOptionName() string
}

// ApplyOptions applies opts to t in order. Nil options are skipped. Later options win when two set the same field.
func ApplyOptions[T any](t *T, opts ...NewClientOption[T]) {
	for _, o := range opts {
		if o == nil {
			continue
		}
		o.Apply(t)
	}
}
