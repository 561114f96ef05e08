package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// GET /menus/:slug — the customer-facing render, no auth.
func RenderPublicMenu(c *gin.Context) {
	rendered, err := menuService().RenderBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
		return
	}
	c.JSON(http.StatusOK, rendered)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// public menus are served cross-origin by design
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws/menus/:slug — viewers subscribe here and reload on menu.updated.
func MenuUpdatesWS(c *gin.Context) {
	slug := c.Param("slug")
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &services.MenuClient{Slug: slug, Conn: conn}
	MenuHub.Register(client)

	// reader loop only to detect disconnect; viewers never send payloads
	go func() {
		defer MenuHub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
