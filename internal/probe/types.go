package probe

import (
	"context"

	"github.com/hamed0406/deephealth/internal/domain"
)

// Checker probes one target. Implementations never return errors:
// every failure mode is encoded in the result's Status.
type Checker interface {
	Check(ctx context.Context, target domain.Target) domain.CheckResult
}
