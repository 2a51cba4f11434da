/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package provider

import (
	"maps"
	"slices"
	"strings"
	"sync"
)

// providerStoreInterface defines the interface for provider store operations.
type providerStoreInterface interface {
	CreateProvider(p Provider) error
	GetProviderList() ([]Provider, error)
	GetProviderByID(id string) (*Provider, error)
	GetProviderByName(name string) (*Provider, error)
	UpdateProvider(p *Provider) error
	DeleteProvider(id string) error
}

// providerStore is an in-memory implementation of providerStoreInterface.
//
// Persistent storage and its schema migrations belong to an external
// collaborator; this store is the seam where such a backend would plug in.
type providerStore struct {
	providers map[string]Provider
	mu        sync.RWMutex
}

var (
	storeInstance *providerStore
	storeOnce     sync.Once
)

// getProviderStore returns the singleton provider store instance.
func getProviderStore() *providerStore {
	storeOnce.Do(func() {
		storeInstance = &providerStore{
			providers: make(map[string]Provider),
		}
	})
	return storeInstance
}

// cloneProvider copies the record's slice and map fields so that stored state
// and returned records never share backing storage.
func cloneProvider(p Provider) Provider {
	p.SigningCertificateIDs = slices.Clone(p.SigningCertificateIDs)
	p.EncryptionCertificateIDs = slices.Clone(p.EncryptionCertificateIDs)
	p.Attributes = maps.Clone(p.Attributes)
	return p
}

// CreateProvider adds a provider record to the store.
func (s *providerStore) CreateProvider(p Provider) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.providers[p.ID] = cloneProvider(p)
	return nil
}

// GetProviderList retrieves all provider records sorted by name.
func (s *providerStore) GetProviderList() ([]Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	providerList := make([]Provider, 0, len(s.providers))
	for _, p := range s.providers {
		providerList = append(providerList, cloneProvider(p))
	}
	slices.SortFunc(providerList, func(a, b Provider) int {
		return strings.Compare(a.Name, b.Name)
	})

	return providerList, nil
}

// GetProviderByID retrieves a provider record by its ID.
func (s *providerStore) GetProviderByID(id string) (*Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.providers[id]
	if !exists {
		return nil, ErrProviderNotFound
	}
	detached := cloneProvider(p)
	return &detached, nil
}

// GetProviderByName retrieves a provider record by its name.
func (s *providerStore) GetProviderByName(name string) (*Provider, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.providers {
		if p.Name == name {
			detached := cloneProvider(p)
			return &detached, nil
		}
	}
	return nil, ErrProviderNotFound
}

// UpdateProvider replaces the stored provider record with the given one.
func (s *providerStore) UpdateProvider(p *Provider) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.providers[p.ID]; !exists {
		return ErrProviderNotFound
	}
	s.providers[p.ID] = cloneProvider(*p)
	return nil
}

// DeleteProvider removes a provider record from the store.
func (s *providerStore) DeleteProvider(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.providers, id)
	return nil
}

// clearStore removes all provider records. Used by tests.
func (s *providerStore) clearStore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.providers = make(map[string]Provider)
}
