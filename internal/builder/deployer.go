package builder

import "context"

// Deployer publishes program bytecode. Implementations typically wrap an
// external build pipeline; the core never spawns processes itself.
type Deployer interface {
	// Publish deploys the package and returns the program address.
	Publish(ctx context.Context, serializedMetadata string, code []string) (string, error)

	// BuildUpgradePayload produces the metadata and module bytecode for an
	// in-place upgrade of an already deployed program.
	BuildUpgradePayload(ctx context.Context) (UpgradeParams, error)
}
