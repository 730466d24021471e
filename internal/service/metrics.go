package service

import "github.com/prometheus/client_golang/prometheus"

var (
	ordersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "autoshop_orders_created_total",
		Help: "Orders placed by customers",
	})
	ordersPaid = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "autoshop_orders_paid_total",
		Help: "Successful order payments",
	})
	paymentsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "autoshop_payments_rejected_total",
		Help: "Payments rejected by card validation",
	}, []string{"field"})
)

func init() { prometheus.MustRegister(ordersCreated, ordersPaid, paymentsRejected) }
