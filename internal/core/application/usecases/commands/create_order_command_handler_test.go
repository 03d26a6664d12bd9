package commands_test

import (
	"errors"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/event"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, orderSpec{reference: "SO-1001"}.attributes())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockClassifyUoW)
	isCreated := mock.MatchedBy(func(events []event.Event) bool {
		return len(events) == 1 && events[0].Type == event.Created && events[0].EntityID.IsEqual(id)
	})
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID().IsEqual(id) && o.Status() == order.Open
		})).Return(nil).Once(),
		uow.On("RecordEvent", isCreated).Return().Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), orderSpec{}.attributes())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockClassifyUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("duplicate reference")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "duplicate reference")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertNotCalled(t, "RecordEvent", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), orderSpec{}.attributes())
	require.NoError(t, err)

	uow := new(MockClassifyUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	err = commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	assert.True(t, uow.AssertNotCalled(t, "OrderRepository"))
}
