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

package form

import (
	"net/http"
	"net/url"
	"sync"
)

// VerificationEmailCookieName holds the last submitted email for unauthenticated visitors.
const VerificationEmailCookieName = "invity_verification_email"

// CookieStore reads and writes cookies visible to the flow page.
type CookieStore interface {
	SetCookie(cookie *http.Cookie)
	Cookie(name string) (string, bool)
}

// NewVerificationEmailCookie builds the cookie persisting the submitted email.
func NewVerificationEmailCookie(email string) *http.Cookie {
	return &http.Cookie{
		Name:     VerificationEmailCookieName,
		Value:    email,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
}

// MemoryCookieStore keeps cookies in memory.
type MemoryCookieStore struct {
	mu      sync.Mutex
	cookies map[string]*http.Cookie
}

// NewMemoryCookieStore creates an empty in-memory cookie store.
func NewMemoryCookieStore() *MemoryCookieStore {
	return &MemoryCookieStore{cookies: map[string]*http.Cookie{}}
}

// SetCookie stores the cookie, replacing any cookie with the same name.
func (s *MemoryCookieStore) SetCookie(cookie *http.Cookie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *cookie
	s.cookies[cookie.Name] = &copied
}

// Cookie returns the value of the named cookie.
func (s *MemoryCookieStore) Cookie(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cookie, ok := s.cookies[name]
	if !ok || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Raw returns a copy of the stored cookie.
func (s *MemoryCookieStore) Raw(name string) (*http.Cookie, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cookie, ok := s.cookies[name]
	if !ok {
		return nil, false
	}
	copied := *cookie
	return &copied, true
}

// JarCookieStore exposes the cookies of a jar for a page URL.
type JarCookieStore struct {
	jar  http.CookieJar
	page *url.URL
}

// NewJarCookieStore creates a cookie store scoped to the page URL.
func NewJarCookieStore(jar http.CookieJar, page *url.URL) *JarCookieStore {
	return &JarCookieStore{jar: jar, page: page}
}

// SetCookie writes the cookie into the jar for the page URL.
func (s *JarCookieStore) SetCookie(cookie *http.Cookie) {
	s.jar.SetCookies(s.page, []*http.Cookie{cookie})
}

// Cookie returns the value of the named cookie for the page URL.
func (s *JarCookieStore) Cookie(name string) (string, bool) {
	for _, cookie := range s.jar.Cookies(s.page) {
		if cookie.Name == name && cookie.Value != "" {
			return cookie.Value, true
		}
	}
	return "", false
}
