package options_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c2fo/ftps/options"
)

type target struct {
	applied []string
}

type nameOpt struct{ name string }

func (o *nameOpt) Apply(t *target) {
	t.applied = append(t.applied, o.name)
}

func (o *nameOpt) NewClientOptionName() string {
	return o.name
}

func TestApplyOptions(t *testing.T) {
	is := require.New(t)

	tgt := &target{}
	options.ApplyOptions(tgt, &nameOpt{"first"}, nil, &nameOpt{"second"})
	is.Equal([]string{"first", "second"}, tgt.applied, "applied in order, nil skipped")

	options.ApplyOptions(tgt)
	is.Len(tgt.applied, 2)
}
