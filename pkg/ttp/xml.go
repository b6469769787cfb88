// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ttp

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadInstance reads a RobinX-style XML instance file. Element names
// are matched anywhere in the document: <team>, <slot> and <distance>
// elements fill the model lists, elements named CA* and SE* become
// capacity and separation constraints, and <InstanceName> carries the
// instance's name. Unknown elements are ignored and missing numeric
// attributes default to zero, matching the tolerant readers this
// format is usually handled with.
func LoadInstance(path string) (*Instance, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer file.Close()

	instance, err := DecodeInstance(file)
	if err != nil {
		return nil, fmt.Errorf("instance: parse %s: %w", path, err)
	}

	return instance, nil
}

// DecodeInstance parses an instance from a reader. See LoadInstance.
func DecodeInstance(reader io.Reader) (*Instance, error) {
	decoder := xml.NewDecoder(reader)
	instance := &Instance{}

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		name := start.Name.Local
		switch {
		case name == "InstanceName":
			var text string
			if err := decoder.DecodeElement(&text, &start); err != nil {
				return nil, err
			}
			instance.Name = strings.TrimSpace(text)

		case name == "team":
			instance.Teams = append(instance.Teams, parseTeam(start))

		case name == "slot":
			instance.Slots = append(instance.Slots, parseSlot(start))

		case name == "distance":
			instance.Distances = append(instance.Distances, parseDistance(start))

		case strings.HasPrefix(name, "CA"):
			instance.CapacityConstraints = append(instance.CapacityConstraints, parseCapacity(start))

		case strings.HasPrefix(name, "SE"):
			instance.SeparationConstraints = append(instance.SeparationConstraints, parseSeparation(start))
		}
	}

	return instance, nil
}

func parseTeam(element xml.StartElement) Team {
	var team Team
	for _, attr := range element.Attr {
		switch attr.Name.Local {
		case "id":
			team.Id = parseInt(attr.Value)
		case "league":
			team.League = parseInt(attr.Value)
		case "name":
			team.Name = attr.Value
		case "teamGroups":
			team.Group = parseInt(attr.Value)
		}
	}

	return team
}

func parseSlot(element xml.StartElement) Slot {
	var slot Slot
	for _, attr := range element.Attr {
		switch attr.Name.Local {
		case "id":
			slot.Id = parseInt(attr.Value)
		case "name":
			slot.Name = attr.Value
		}
	}

	return slot
}

func parseDistance(element xml.StartElement) Distance {
	var distance Distance
	for _, attr := range element.Attr {
		switch attr.Name.Local {
		case "dist":
			distance.Dist = parseInt(attr.Value)
		case "team1":
			distance.From = parseInt(attr.Value)
		case "team2":
			distance.To = parseInt(attr.Value)
		}
	}

	return distance
}

func parseCapacity(element xml.StartElement) CapacityConstraint {
	var constraint CapacityConstraint
	for _, attr := range element.Attr {
		switch attr.Name.Local {
		case "intp":
			constraint.Interval = parseInt(attr.Value)
		case "max":
			constraint.Max = parseInt(attr.Value)
		case "min":
			constraint.Min = parseInt(attr.Value)
		case "mode1":
			if attr.Value != "" {
				constraint.Mode = Mode(attr.Value[0])
			}
		case "penalty":
			constraint.Penalty = parseInt(attr.Value)
		case "teamGroups1":
			constraint.Groups[0] = parseInt(attr.Value)
		case "teamGroups2":
			constraint.Groups[1] = parseInt(attr.Value)
		case "type":
			constraint.Type = attr.Value
		}
	}

	return constraint
}

func parseSeparation(element xml.StartElement) SeparationConstraint {
	var constraint SeparationConstraint
	for _, attr := range element.Attr {
		switch attr.Name.Local {
		case "max":
			constraint.Max = parseInt(attr.Value)
		case "min":
			constraint.Min = parseInt(attr.Value)
		case "penalty":
			constraint.Penalty = parseInt(attr.Value)
		case "teamGroups":
			constraint.Group = parseInt(attr.Value)
		case "type":
			constraint.Type = attr.Value
		}
	}

	return constraint
}

func parseInt(value string) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}

	return parsed
}
