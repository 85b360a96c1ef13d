package handlers

import (
	"restaurant-management-api/config"
	"restaurant-management-api/groups"
	"restaurant-management-api/orders"
	"restaurant-management-api/storage"
)

var (
	converter *orders.Converter
	orderSvc  *orders.Service
	groupMgr  *groups.Manager
)

// Init wires the core services to the database. Must run after
// config.InitDB.
func Init() {
	store := storage.NewStore(config.DB)
	converter = orders.NewConverter(store)
	orderSvc = orders.NewService(store)
	groupMgr = groups.NewManager(storage.NewDirectory(config.DB))
}
