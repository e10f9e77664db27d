package pbconv

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/banshee-data/spatial"
	"github.com/banshee-data/spatial/spatialpb"
)

func TestVectorRoundTrip(t *testing.T) {
	v := r3.Vector{X: 1.5, Y: -2.25, Z: 0.125}
	m := VectorToProto(v)
	assert.Empty(t, cmp.Diff(&spatialpb.Vector3{X: 1.5, Y: -2.25, Z: 0.125}, m, protocmp.Transform()))
	assert.Equal(t, v, VectorFromProto(m))
}

func TestVectorFromNil(t *testing.T) {
	assert.Equal(t, r3.Vector{}, VectorFromProto(nil))
}

func TestQuaternionRoundTrip(t *testing.T) {
	q := spatial.Quaternion{X: 0.1, Y: -0.2, Z: 0.3, W: 0.9}
	m := QuaternionToProto(q)
	assert.Empty(t, cmp.Diff(&spatialpb.Quaternion{X: 0.1, Y: -0.2, Z: 0.3, W: 0.9}, m, protocmp.Transform()))
	assert.Equal(t, q, QuaternionFromProto(m))
}

func TestQuaternionFromNilIsZero(t *testing.T) {
	// No identity substitution at the quaternion level; that belongs to
	// rotation decoding.
	assert.Equal(t, spatial.Zero(), QuaternionFromProto(nil))
	assert.Equal(t, spatial.Zero(), QuaternionFromProto(&spatialpb.Quaternion{}))
}

func TestRotationRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(40))
	for i := 0; i < 10; i++ {
		r := spatial.RandomRotation(rng)
		got, err := RotationFromProto(RotationToProto(r))
		require.NoError(t, err)
		assert.True(t, got.EqualExact(r), "%v vs %v", got, r)
	}
}

func TestRotationFromDefaultMessageIsIdentity(t *testing.T) {
	for name, m := range map[string]*spatialpb.Quaternion{
		"nil":         nil,
		"all default": {},
	} {
		t.Run(name, func(t *testing.T) {
			r, err := RotationFromProto(m)
			require.NoError(t, err)
			assert.True(t, r.EqualExact(spatial.IdentityRotation()))
		})
	}
}

func TestRotationFromDegenerateQuaternion(t *testing.T) {
	_, err := RotationFromProto(&spatialpb.Quaternion{X: 1e-300})
	assert.ErrorIs(t, err, spatial.ErrInvalidRotation)
}

func TestPoseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	for i := 0; i < 10; i++ {
		p := spatial.NewPose3(
			spatial.RandomRotation(rng),
			r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()},
		)
		got, err := PoseFromProto(PoseToProto(p))
		require.NoError(t, err)
		assert.True(t, got.Rotation.EqualExact(p.Rotation))
		assert.Equal(t, p.Translation, got.Translation)
	}
}

func TestPoseFromPartialMessage(t *testing.T) {
	t.Run("nil transform", func(t *testing.T) {
		p, err := PoseFromProto(nil)
		require.NoError(t, err)
		assert.True(t, p.Rotation.EqualExact(spatial.IdentityRotation()))
		assert.Equal(t, r3.Vector{}, p.Translation)
	})

	t.Run("position only", func(t *testing.T) {
		p, err := PoseFromProto(&spatialpb.Transform{Position: &spatialpb.Vector3{X: 3}})
		require.NoError(t, err)
		assert.True(t, p.Rotation.EqualExact(spatial.IdentityRotation()))
		assert.Equal(t, r3.Vector{X: 3}, p.Translation)
	})

	t.Run("rotation only", func(t *testing.T) {
		p, err := PoseFromProto(&spatialpb.Transform{Rotation: RotationToProto(spatial.RZ180())})
		require.NoError(t, err)
		assert.True(t, p.Rotation.EqualExact(spatial.RZ180()))
		assert.Equal(t, r3.Vector{}, p.Translation)
	})
}

func TestTransformWireRoundTrip(t *testing.T) {
	p := spatial.NewPose3(spatial.XRotation(0.75), r3.Vector{X: 1, Y: 2, Z: 3})

	data, err := proto.Marshal(PoseToProto(p))
	require.NoError(t, err)

	var m spatialpb.Transform
	require.NoError(t, proto.Unmarshal(data, &m))

	got, err := PoseFromProto(&m)
	require.NoError(t, err)
	assert.True(t, got.Rotation.EqualExact(p.Rotation))
	assert.Equal(t, p.Translation, got.Translation)
}
