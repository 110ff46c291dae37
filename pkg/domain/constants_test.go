package domain_test

import (
	"testing"

	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaults_ReturnCopies(t *testing.T) {
	for name, fn := range map[string]func() []int{
		"sort":  domain.DefaultSortArray,
		"tree":  domain.DefaultTreeValues,
		"list":  domain.DefaultListValues,
		"stack": domain.DefaultStackPush,
	} {
		t.Run(name, func(t *testing.T) {
			first := fn()
			want := append([]int{}, first...)
			first[0] = -999
			assert.Equal(t, want, fn())
		})
	}
	assert.Equal(t, []int{50, 30, 20, 40, 70, 60, 80}, domain.DefaultTreeValues())
}
