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

package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/invity/authflow/internal/form"
)

type ViewTestSuite struct {
	suite.Suite
	view *form.View
}

func TestViewSuite(t *testing.T) {
	suite.Run(t, new(ViewTestSuite))
}

func (suite *ViewTestSuite) SetupTest() {
	suite.view = form.NewView()
}

func (suite *ViewTestSuite) TestNewViewHasFullLayout() {
	for _, id := range form.AllElements {
		assert.True(suite.T(), suite.view.Has(id), string(id))
	}
	password, ok := suite.view.Input(form.ElementPassword)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), form.InputTypePassword, password.Type)
}

func (suite *ViewTestSuite) TestPartialLayout() {
	view := form.NewView(form.ElementForm, form.ElementSubmit, form.ElementEmail)

	assert.False(suite.T(), view.Has(form.ElementPassword))
	_, ok := view.Input(form.ElementPassword)
	assert.False(suite.T(), ok)
	assert.False(suite.T(), view.SetInputName(form.ElementPassword, "password"))
}

func (suite *ViewTestSuite) TestDisable() {
	suite.view.Disable()

	email, _ := suite.view.Input(form.ElementEmail)
	password, _ := suite.view.Input(form.ElementPassword)
	assert.True(suite.T(), email.Disabled)
	assert.True(suite.T(), password.Disabled)
	assert.True(suite.T(), suite.view.SubmitDisabled())
}

func (suite *ViewTestSuite) TestShowMessage() {
	suite.view.ShowMessage("info", "Check your inbox", false)
	suite.view.ShowMessage("error", "Nope", false)

	assert.Equal(suite.T(), "Check your inbox", suite.view.Text(form.ElementInfo))
	assert.Equal(suite.T(), "Nope", suite.view.Text(form.ElementErrorPassword))
	assert.False(suite.T(), suite.view.SubmitDisabled())

	suite.view.ShowMessage("warning", "Disabled", true)
	assert.Equal(suite.T(), "Disabled", suite.view.Text(form.ElementErrorPassword))
	assert.True(suite.T(), suite.view.SubmitDisabled())
}

func (suite *ViewTestSuite) TestPromoteSubmitLink() {
	suite.view.SetSubmitValue("link")
	suite.view.PromoteSubmitLink()

	assert.True(suite.T(), suite.view.Has(form.ElementSubmit))
	assert.False(suite.T(), suite.view.Has(form.ElementSubmitLink))
	assert.Empty(suite.T(), suite.view.SubmitValue())
}

func (suite *ViewTestSuite) TestDispatchSetsValueAndFiresListeners() {
	var seen []string
	suite.view.AddListener(form.ElementEmail, form.EventInput, func(v *form.View, value string) {
		seen = append(seen, value)
		v.SetText(form.ElementErrorEmail, "checked")
	})

	suite.view.Dispatch(form.ElementEmail, form.EventInput, "a@b.io")
	suite.view.Dispatch(form.ElementEmail, form.EventPaste, "c@d.io")

	email, _ := suite.view.Input(form.ElementEmail)
	assert.Equal(suite.T(), "c@d.io", email.Value)
	assert.Equal(suite.T(), []string{"a@b.io"}, seen)
	assert.Equal(suite.T(), "checked", suite.view.Text(form.ElementErrorEmail))
}

func (suite *ViewTestSuite) TestSubmitWithoutHandlerProceeds() {
	assert.True(suite.T(), suite.view.Submit())

	suite.view.SetSubmitHandler(func(*form.View) bool { return false })
	assert.False(suite.T(), suite.view.Submit())
}
