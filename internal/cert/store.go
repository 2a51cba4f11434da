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

package cert

import (
	"slices"
	"strings"
	"sync"
)

// certificateStoreInterface defines the interface for certificate store operations.
type certificateStoreInterface interface {
	CreateCertificate(certificate Certificate) error
	GetCertificateList() ([]Certificate, error)
	GetCertificateByID(id string) (*Certificate, error)
	GetCertificateByName(name string) (*Certificate, error)
	UpdateCertificate(certificate *Certificate) error
	DeleteCertificate(id string) error
}

// certificateStore is an in-memory implementation of certificateStoreInterface.
//
// Persistent storage and its schema migrations belong to an external
// collaborator; this store is the seam where such a backend would plug in.
type certificateStore struct {
	certificates map[string]Certificate
	mu           sync.RWMutex
}

var (
	storeInstance *certificateStore
	storeOnce     sync.Once
)

// getCertificateStore returns the singleton certificate store instance.
func getCertificateStore() *certificateStore {
	storeOnce.Do(func() {
		storeInstance = &certificateStore{
			certificates: make(map[string]Certificate),
		}
	})
	return storeInstance
}

// CreateCertificate adds a certificate record to the store.
func (s *certificateStore) CreateCertificate(certificate Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.certificates[certificate.ID] = certificate
	return nil
}

// GetCertificateList retrieves all certificate records sorted by name.
func (s *certificateStore) GetCertificateList() ([]Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	certList := make([]Certificate, 0, len(s.certificates))
	for _, certificate := range s.certificates {
		certList = append(certList, certificate)
	}
	slices.SortFunc(certList, func(a, b Certificate) int {
		return strings.Compare(a.Name, b.Name)
	})

	return certList, nil
}

// GetCertificateByID retrieves a certificate record by its ID.
func (s *certificateStore) GetCertificateByID(id string) (*Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	certificate, exists := s.certificates[id]
	if !exists {
		return nil, ErrCertificateNotFound
	}
	return &certificate, nil
}

// GetCertificateByName retrieves a certificate record by its name.
func (s *certificateStore) GetCertificateByName(name string) (*Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, certificate := range s.certificates {
		if certificate.Name == name {
			return &certificate, nil
		}
	}
	return nil, ErrCertificateNotFound
}

// UpdateCertificate replaces the stored certificate record with the given one.
func (s *certificateStore) UpdateCertificate(certificate *Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.certificates[certificate.ID]; !exists {
		return ErrCertificateNotFound
	}
	s.certificates[certificate.ID] = *certificate
	return nil
}

// DeleteCertificate removes a certificate record from the store.
func (s *certificateStore) DeleteCertificate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.certificates, id)
	return nil
}

// clearStore removes all certificate records. Used by tests.
func (s *certificateStore) clearStore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.certificates = make(map[string]Certificate)
}
