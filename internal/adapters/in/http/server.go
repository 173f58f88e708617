// Package http provides the inbound HTTP adapter. Handlers translate
// JSON requests into commands and queries and map domain errors onto
// HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"bookshop/internal/core/application/usecases/commands"
	"bookshop/internal/core/application/usecases/queries"
	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/order"
	"bookshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createMemberHandler       commands.CreateMemberCommandHandler
	changeMemberNameHandler   commands.ChangeMemberNameCommandHandler
	createBookHandler         commands.CreateBookCommandHandler
	updateItemHandler         commands.UpdateItemCommandHandler
	createCategoryHandler     commands.CreateCategoryCommandHandler
	assignItemCategoryHandler commands.AssignItemCategoryCommandHandler
	placeOrderHandler         commands.PlaceOrderCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	completeDeliveryHandler   commands.CompleteDeliveryCommandHandler

	// Query handlers
	getOrderHandler      queries.GetOrderQueryHandler
	getAllMembersHandler queries.GetAllMembersQueryHandler
	getAllItemsHandler   queries.GetAllItemsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createMemberHandler commands.CreateMemberCommandHandler,
	changeMemberNameHandler commands.ChangeMemberNameCommandHandler,
	createBookHandler commands.CreateBookCommandHandler,
	updateItemHandler commands.UpdateItemCommandHandler,
	createCategoryHandler commands.CreateCategoryCommandHandler,
	assignItemCategoryHandler commands.AssignItemCategoryCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllMembersHandler queries.GetAllMembersQueryHandler,
	getAllItemsHandler queries.GetAllItemsQueryHandler,
) *Server {
	return &Server{
		createMemberHandler:       createMemberHandler,
		changeMemberNameHandler:   changeMemberNameHandler,
		createBookHandler:         createBookHandler,
		updateItemHandler:         updateItemHandler,
		createCategoryHandler:     createCategoryHandler,
		assignItemCategoryHandler: assignItemCategoryHandler,
		placeOrderHandler:         placeOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		completeDeliveryHandler:   completeDeliveryHandler,
		getOrderHandler:           getOrderHandler,
		getAllMembersHandler:      getAllMembersHandler,
		getAllItemsHandler:        getAllItemsHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/members", s.CreateMember)
	api.GET("/members", s.GetMembers)
	api.PUT("/members/:id/name", s.RenameMember)

	api.POST("/items", s.CreateBook)
	api.GET("/items", s.GetItems)
	api.PUT("/items/:id", s.UpdateItem)
	api.POST("/items/:id/categories", s.AssignItemCategory)

	api.POST("/categories", s.CreateCategory)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/delivery/complete", s.CompleteDelivery)
}

// CreateMember handles POST /api/v1/members.
func (s *Server) CreateMember(ctx echo.Context) error {
	var body NewMember
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	address, err := kernel.NewAddress(body.City, body.Street, body.Zipcode)
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	cmd, err := commands.NewCreateMemberCommand(kernel.NewUUID(), body.Name, address)
	if err != nil {
		return badRequest(ctx, "Invalid member data: "+err.Error())
	}

	if handleErr := s.createMemberHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.MemberID().String()})
}

// GetMembers handles GET /api/v1/members.
func (s *Server) GetMembers(ctx echo.Context) error {
	query := queries.NewGetAllMembersQuery()

	members, err := s.getAllMembersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve members")
	}

	response := make([]Member, len(members))
	for i, m := range members {
		response[i] = Member{
			ID:      m.ID.String(),
			Name:    m.Name,
			City:    m.City,
			Street:  m.Street,
			Zipcode: m.Zipcode,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RenameMember handles PUT /api/v1/members/:id/name.
func (s *Server) RenameMember(ctx echo.Context) error {
	memberID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid member ID")
	}

	var body RenameMember
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeMemberNameCommand(memberID, body.Name)
	if err != nil {
		return badRequest(ctx, "Invalid member data: "+err.Error())
	}

	if handleErr := s.changeMemberNameHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateBook handles POST /api/v1/items.
func (s *Server) CreateBook(ctx echo.Context) error {
	var body NewBook
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateBookCommand(
		kernel.NewUUID(), body.Name, body.Price, body.StockQuantity, body.Author, body.ISBN)
	if err != nil {
		return badRequest(ctx, "Invalid book data: "+err.Error())
	}

	if handleErr := s.createBookHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.ItemID().String()})
}

// GetItems handles GET /api/v1/items.
func (s *Server) GetItems(ctx echo.Context) error {
	query := queries.NewGetAllItemsQuery()

	items, err := s.getAllItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve items")
	}

	response := make([]Item, len(items))
	for i, it := range items {
		response[i] = Item{
			ID:            it.ID.String(),
			Name:          it.Name,
			Price:         it.Price,
			StockQuantity: it.StockQuantity,
			Kind:          it.Kind,
			Author:        it.Author,
			ISBN:          it.ISBN,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateItem handles PUT /api/v1/items/:id.
func (s *Server) UpdateItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid item ID")
	}

	var body UpdateItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateItemCommand(itemID, body.Name, body.Price, body.StockQuantity)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.updateItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCategory handles POST /api/v1/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var body NewCategory
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCategoryCommand(kernel.NewUUID(), body.Name)
	if err != nil {
		return badRequest(ctx, "Invalid category data: "+err.Error())
	}

	if handleErr := s.createCategoryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.CategoryID().String()})
}

// AssignItemCategory handles POST /api/v1/items/:id/categories.
func (s *Server) AssignItemCategory(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid item ID")
	}

	var body AssignCategory
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	categoryID, err := kernel.UUIDFromString(body.CategoryID)
	if err != nil {
		return badRequest(ctx, "Invalid category ID")
	}

	cmd, err := commands.NewAssignItemCategoryCommand(itemID, categoryID)
	if err != nil {
		return badRequest(ctx, "Invalid category assignment: "+err.Error())
	}

	if handleErr := s.assignItemCategoryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	memberID, err := kernel.UUIDFromString(body.MemberID)
	if err != nil {
		return badRequest(ctx, "Invalid member ID")
	}

	itemID, err := kernel.UUIDFromString(body.ItemID)
	if err != nil {
		return badRequest(ctx, "Invalid item ID")
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), memberID, itemID, body.Count)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.OrderID().String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	rows, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	head := rows[0]
	response := Order{
		ID:             head.OrderID.String(),
		MemberName:     head.MemberName,
		OrderDate:      head.OrderDate,
		Status:         head.Status,
		City:           head.City,
		Street:         head.Street,
		Zipcode:        head.Zipcode,
		DeliveryStatus: head.DeliveryStatus,
		Lines:          make([]OrderLine, 0, len(rows)),
	}
	for _, row := range rows {
		response.TotalPrice += row.OrderPrice * row.Count
		response.Lines = append(response.Lines, OrderLine{
			ItemName:   row.ItemName,
			OrderPrice: row.OrderPrice,
			Count:      row.Count,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/:id/delivery/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	if handleErr := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// domainError maps use case errors onto HTTP status codes: missing
// aggregates become 404, business conflicts become 409 and everything
// else is treated as a bad request.
func domainError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return respond(ctx, http.StatusNotFound, err.Error())
	}

	var versionErr *errs.VersionIsInvalidError
	if errors.Is(err, item.ErrInsufficientStock) ||
		errors.Is(err, order.ErrOrderAlreadyDelivered) ||
		errors.As(err, &versionErr) {
		return respond(ctx, http.StatusConflict, err.Error())
	}

	return respond(ctx, http.StatusBadRequest, err.Error())
}

func badRequest(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusBadRequest, message)
}

func internalError(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusInternalServerError, message)
}

func respond(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
