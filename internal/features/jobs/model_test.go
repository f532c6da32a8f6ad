package jobs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostedByTypeValid(t *testing.T) {
	require.True(t, PostedByUser.Valid())
	require.True(t, PostedByCompany.Valid())
	require.False(t, PostedByType("").Valid())
	require.False(t, PostedByType("bot").Valid())
}
