package dao

import (
	"context"
	"testing"

	"gitee.com/flycash/notification-scheduler/internal/errs"
	testioc "gitee.com/flycash/notification-scheduler/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceDAO(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := testioc.InitDB()
	require.NoError(t, InitTables(db))
	d := NewDeviceDAO(db)

	for _, reg := range []string{"reg-1", "reg-2"} {
		_, err := d.Create(ctx, Device{UserID: 1, RegistrationID: reg, DeviceID: "dev", DeviceType: "android"})
		require.NoError(t, err)
	}
	_, err := d.Create(ctx, Device{UserID: 2, RegistrationID: "reg-3", DeviceID: "dev", DeviceType: "ios"})
	require.NoError(t, err)

	_, err = d.Create(ctx, Device{UserID: 1, RegistrationID: "reg-1", DeviceID: "dev", DeviceType: "android"})
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)

	devices, err := d.FindByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "reg-1", devices[0].RegistrationID)

	cnt, err := d.DeleteByRegistrationIDs(ctx, []string{"reg-1", "reg-404"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt)

	cnt, err = d.DeleteByRegistrationIDs(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, cnt)

	devices, err = d.FindByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "reg-2", devices[0].RegistrationID)
}
