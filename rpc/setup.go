// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"io"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/propertyd/counter"
	"github.com/bitmark-inc/propertyd/fault"
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections int      `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	listener *listener.MultiListener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connection count for Node.Info
var connectionCount counter.Counter

// Initialise - start the RPC server
func Initialise(configuration *RPCConfiguration, version string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if configuration.MaximumConnections <= 0 {
		log.Errorf("invalid maximum connection limit: %d", configuration.MaximumConnections)
		return fault.ErrMissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Error("missing listen addresses")
		return fault.ErrMissingParameters
	}

	tlsConfiguration, fingerprint, err := getCertificate(log, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("SHA3-256 fingerprint: %x", fingerprint)

	// expand "*:PORT" to the tcp4 and tcp6 wildcards
	addresses := make([]string, 0, 2*len(configuration.Listen))
	for _, address := range configuration.Listen {
		if '*' == address[0] {
			port := strings.Split(address, ":")[1]
			addresses = append(addresses, "0.0.0.0:"+port, "[::]:"+port)
		} else {
			addresses = append(addresses, address)
		}
	}

	limiter := listener.NewLimiter(configuration.MaximumConnections)
	globalData.listener, err = listener.NewMultiListener("rpc", addresses, tlsConfiguration, limiter, callback)
	if nil != err {
		log.Errorf("rpc server listen error: %s", err)
		return err
	}

	server := createRPCServer(log, version)
	argument := &serverArgument{
		Log:    log,
		Server: server,
	}
	globalData.listener.Start(argument)

	globalData.initialised = true
	return nil
}

// Finalise - stop the RPC server
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.listener.Stop()

	globalData.log.Info("finished")
	globalData.log.Flush()
	globalData.initialised = false
	return nil
}

// load the certificate pair and compute its fingerprint
func getCertificate(log *logger.L, certificateFileName string, keyFileName string) (*tls.Config, [32]byte, error) {
	var fingerprint [32]byte

	keyPair, err := tls.LoadX509KeyPair(certificateFileName, keyFileName)
	if nil != err {
		log.Errorf("failed to load keypair: %s", err)
		return nil, fingerprint, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fingerprint = sha3.Sum256(keyPair.Certificate[0])
	return tlsConfiguration, fingerprint, nil
}

// per connection data
type serverArgument struct {
	Log    *logger.L
	Server *rpc.Server
}

// the connection handler
func callback(conn io.ReadWriteCloser, argument interface{}) {
	serverArgument := argument.(*serverArgument)

	if nil == serverArgument {
		panic("rpc callback: nil serverArgument")
	}
	if nil == serverArgument.Server {
		panic("rpc callback: nil serverArgument.Server")
	}

	connectionCount.Increment()
	defer connectionCount.Decrement()

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	serverArgument.Server.ServeCodec(codec)
}
