package utils

import (
	"net"
	"strings"
)

// GetLocalIP - returns local IP address
func GetLocalIP() string {

	conn, _ := net.Dial("udp", "8.8.8.8:80")

	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)

	return strings.Split(localAddr.String(), ":")[0]
}
