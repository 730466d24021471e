package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"autoshop/internal/service"
	"autoshop/internal/transport/http/ez"
	resp "autoshop/internal/transport/http/response"
)

// Orders 下单与支付，只对本人订单开放
type Orders struct{ Deps }

func NewOrders(d Deps) *Orders { return &Orders{Deps: d} }

func (h *Orders) Priority() int { return 30 }

func (h *Orders) Mount(g Groups) {
	ez.RegisterAction(g.Authed, ez.Action[struct{}]{
		Path:     "/create_order/:work_type_id",
		Template: "create_order.html",
		Log:      h.Log,
		Page: func(c *gin.Context) (gin.H, error) {
			id, err := ez.ParamID(c, "work_type_id")
			if err != nil {
				return nil, err
			}
			w, err := h.Catalog.GetWorkType(c.Request.Context(), id)
			if err != nil {
				return nil, err
			}
			return gin.H{"WorkType": w, "Title": "Order " + w.Name}, nil
		},
		Handler: func(c *gin.Context, _ *struct{}) (string, string, error) {
			id, err := ez.ParamID(c, "work_type_id")
			if err != nil {
				return "", "", err
			}
			o, err := h.Orders.Create(c.Request.Context(), resp.CurrentUser(c), id)
			if err != nil {
				return "", "", err
			}
			return "/pay_order/" + strconv.FormatUint(uint64(o.ID), 10), "Order created successfully", nil
		},
	})

	ez.RegisterAction(g.Authed, ez.Action[service.PaymentInput]{
		Path:     "/pay_order/:order_id",
		Template: "pay_order.html",
		Log:      h.Log,
		Page: func(c *gin.Context) (gin.H, error) {
			id, err := ez.ParamID(c, "order_id")
			if err != nil {
				return nil, err
			}
			o, err := h.Orders.Get(c.Request.Context(), resp.CurrentUser(c), id)
			if err != nil {
				return nil, err
			}
			return gin.H{"Order": o, "Title": "Payment"}, nil
		},
		Handler: func(c *gin.Context, in *service.PaymentInput) (string, string, error) {
			id, err := ez.ParamID(c, "order_id")
			if err != nil {
				return "", "", err
			}
			if _, err := h.Orders.Pay(c.Request.Context(), resp.CurrentUser(c), id, *in); err != nil {
				return "", "", err
			}
			return resp.PathProfile, "Payment successful", nil
		},
	})
}
