// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package unrolled_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siderolabs/go-unrolled"
)

func TestOptions(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		name string

		options []unrolled.OptionFunc

		expectedError string
	}{
		{
			name: "defaults",
		},
		{
			name: "zero capacity",

			options: []unrolled.OptionFunc{
				unrolled.WithChunkCapacity(0),
			},

			expectedError: "chunk capacity should be positive: 0",
		},
		{
			name: "negative capacity",

			options: []unrolled.OptionFunc{
				unrolled.WithChunkCapacity(-8),
			},

			expectedError: "chunk capacity should be positive: -8",
		},
		{
			name: "unknown policy",

			options: []unrolled.OptionFunc{
				unrolled.WithRetirement(unrolled.RetirementPolicy(42)),
			},

			expectedError: "unknown retirement policy: RetirementPolicy(42)",
		},
		{
			name: "nil logger",

			options: []unrolled.OptionFunc{
				unrolled.WithLogger(nil),
			},

			expectedError: "logger should be set",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			l, err := unrolled.New[int](test.options...)

			if test.expectedError != "" {
				require.EqualError(t, err, test.expectedError)
				assert.Nil(t, l)

				return
			}

			require.NoError(t, err)
			require.NoError(t, l.Close())
		})
	}
}

func TestRetirementPolicyString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "lazy", unrolled.RetireLazy.String())
	assert.Equal(t, "immediate", unrolled.RetireImmediate.String())
}
