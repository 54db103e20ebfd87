package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	k "asset-tracker/internal/kafka"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	mock "github.com/stretchr/testify/mock"
)

func updateMessage(update k.StatusUpdate) kafka.Message {
	data, _ := json.Marshal(update)
	return kafka.Message{Key: []byte(update.DeviceID), Value: data}
}

func Test_ProcessMessage(t *testing.T) {
	cases := []struct {
		name        string
		setupReader func() k.Reader
		setupHub    func() broadcaster
		expectedErr error
	}{
		{
			name: "valid update",
			setupReader: func() k.Reader {
				r := k.NewMockReader(t)
				r.EXPECT().ReadMessage(mock.Anything).Return(updateMessage(k.StatusUpdate{
					DeviceID: "device123",
					StatusID: 5,
					Users:    []int64{1, 4},
				}), nil)
				return r
			},
			setupHub: func() broadcaster {
				h := NewMockbroadcaster(t)
				h.EXPECT().Notify([]int64{1, 4}, "device123").Return()
				return h
			},
			expectedErr: nil,
		},
		{
			name: "device without users",
			setupReader: func() k.Reader {
				r := k.NewMockReader(t)
				r.EXPECT().ReadMessage(mock.Anything).Return(updateMessage(k.StatusUpdate{DeviceID: "device123"}), nil)
				return r
			},
			setupHub: func() broadcaster {
				return NewMockbroadcaster(t)
			},
			expectedErr: nil,
		},
		{
			name: "reader failed",
			setupReader: func() k.Reader {
				r := k.NewMockReader(t)
				r.EXPECT().ReadMessage(mock.Anything).Return(kafka.Message{}, errors.New("failed to read"))
				return r
			},
			setupHub: func() broadcaster {
				return NewMockbroadcaster(t)
			},
			expectedErr: ErrReadMessage,
		},
		{
			name: "invalid JSON",
			setupReader: func() k.Reader {
				r := k.NewMockReader(t)
				r.EXPECT().ReadMessage(mock.Anything).Return(kafka.Message{Value: []byte("payload")}, nil)
				return r
			},
			setupHub: func() broadcaster {
				return NewMockbroadcaster(t)
			},
			expectedErr: ErrJSONParse,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &Notifier{
				reader: tt.setupReader(),
				hub:    tt.setupHub(),
			}
			err := notifier.ProcessMessage(context.Background())
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
