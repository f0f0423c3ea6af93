package platform

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
)

// MultiarchCommand reports the Debian multiarch triplet of the host
var MultiarchCommand = []string{"dpkg-architecture", "-qDEB_HOST_MULTIARCH"}

// QueryMultiarch returns the library path triplet (e.g. x86_64-linux-gnu)
// reported by dpkg-architecture. Any failure, including empty output, is
// reported as ErrProbeFailure.
func QueryMultiarch(ctx context.Context, runner Runner) (string, error) {
	out, err := runner.Output(ctx, MultiarchCommand[0], MultiarchCommand[1:]...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProbeFailure, err)
	}

	sc := bufio.NewScanner(bytes.NewReader(out))
	if !sc.Scan() {
		return "", fmt.Errorf("%w: %s printed nothing", ErrProbeFailure, MultiarchCommand[0])
	}
	triplet := strings.TrimSpace(sc.Text())
	if triplet == "" || strings.ContainsAny(triplet, `/\`) {
		return "", fmt.Errorf("%w: bad multiarch triplet %q", ErrProbeFailure, triplet)
	}
	return triplet, nil
}
