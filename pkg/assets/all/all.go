// Package all registers every assets backend.
package all

import (
	_ "github.com/infratech/site/pkg/assets/local"
	_ "github.com/infratech/site/pkg/assets/s3"
)
