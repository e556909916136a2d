package firescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenericCallInfersTypeArgsFromMatchingArguments(t *testing.T) {
	p := NewParser(`
T max<T: int32 | float64>(T a, T b) {
    if (a > b) {
        return a;
    }
    return b;
}
float64 r = max(1.0f64, 2.0f64);
`)
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}

func TestGenericCallConflictingInferenceIsAnError(t *testing.T) {
	p := NewParser(`
T max<T: int32 | float64>(T a, T b) {
    if (a > b) {
        return a;
    }
    return b;
}
float64 r = max(1, 2.0f64);
`)
	p.Parse()
	assert.True(t, p.Diagnostics.HasErrors())
}

func TestGenericCallExplicitTypeArgsSatisfyingConstraint(t *testing.T) {
	p := NewParser(`
T identity<T: int32 | string>(T a) { return a; }
int32 r = identity<int32>(5);
`)
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}

func TestGenericCallTypeArgViolatingConstraintIsAnError(t *testing.T) {
	p := NewParser(`
T identity<T: int32 | string>(T a) { return a; }
bool r = identity<bool>(true);
`)
	p.Parse()
	assert.True(t, p.Diagnostics.HasErrors())
}

func TestConstraintAliasDeclarationExpandsInUnion(t *testing.T) {
	p := NewParser(`
constraint Numeric = int32 | float64;
T add<T: Numeric>(T a, T b) { return a; }
int32 r = add(1, 2);
`)
	p.Parse()
	assert.False(t, p.Diagnostics.HasErrors())
}
