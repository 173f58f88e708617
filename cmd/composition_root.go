package cmd

import (
	"bookshop/internal/adapters/out/postgres"
	"bookshop/internal/adapters/out/postgres/categoryrepo"
	"bookshop/internal/adapters/out/postgres/itemrepo"
	"bookshop/internal/adapters/out/postgres/memberrepo"
	"bookshop/internal/adapters/out/postgres/orderrepo"
	"bookshop/internal/core/application/usecases/commands"
	"bookshop/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires repositories, unit of work factories and handlers
// together. Handlers are created on demand so each carries its own
// narrowly scoped unit of work factory.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the application's composition root over an
// open database connection.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// MigrateDB creates or updates the database schema for all aggregates.
func (c *CompositionRoot) MigrateDB() error {
	return c.gormDB.AutoMigrate(
		&memberrepo.MemberDTO{},
		&itemrepo.ItemDTO{},
		&itemrepo.ItemCategoryDTO{},
		&categoryrepo.CategoryDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.DeliveryDTO{},
		&orderrepo.OrderItemDTO{},
	)
}

func (c *CompositionRoot) CreateCreateMemberCommandHandler() commands.CreateMemberCommandHandler {
	var f commands.MemberUoWFactory = FuncMemberUoWFactory(func() commands.MemberUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMemberCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeMemberNameCommandHandler() commands.ChangeMemberNameCommandHandler {
	var f commands.MemberUoWFactory = FuncMemberUoWFactory(func() commands.MemberUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeMemberNameCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateBookCommandHandler() commands.CreateBookCommandHandler {
	var f commands.ItemUoWFactory = FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBookCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() commands.UpdateItemCommandHandler {
	var f commands.ItemUoWFactory = FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	var f commands.CategoryUoWFactory = FuncCategoryUoWFactory(func() commands.CategoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignItemCategoryCommandHandler() commands.AssignItemCategoryCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignItemCategoryCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.CancelOrderUoWFactory = FuncCancelOrderUoWFactory(func() commands.CancelOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDueDeliveriesCommandHandler() commands.CompleteDueDeliveriesCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDueDeliveriesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllMembersQueryHandler() queries.GetAllMembersQueryHandler {
	return queries.NewGetAllMembersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllItemsQueryHandler() queries.GetAllItemsQueryHandler {
	return queries.NewGetAllItemsQueryHandler(c.gormDB)
}

type FuncMemberUoWFactory func() commands.MemberUoW

func (f FuncMemberUoWFactory) Create() commands.MemberUoW {
	return f()
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncCategoryUoWFactory func() commands.CategoryUoW

func (f FuncCategoryUoWFactory) Create() commands.CategoryUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncCancelOrderUoWFactory func() commands.CancelOrderUoW

func (f FuncCancelOrderUoWFactory) Create() commands.CancelOrderUoW {
	return f()
}
