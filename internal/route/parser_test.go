// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTemplate(t *testing.T) {
	valid := []string{
		"/",
		"/test",
		"/{a}/{b}",
		"/test/foo/{...wildcard}",
		"/npm/@{p1}/{p2}",
		"/files/{category}/{id},name={name}.txt",
	}
	for _, path := range valid {
		t.Run(path, func(t *testing.T) {
			assert.NoError(t, ValidateTemplate(path))
		})
	}

	invalid := []string{
		"/files/{unterminated",
		"/files/unopened}",
	}
	for _, path := range invalid {
		t.Run(path, func(t *testing.T) {
			assert.ErrorIs(t, ValidateTemplate(path), ErrInvalidTemplate)
		})
	}
}
